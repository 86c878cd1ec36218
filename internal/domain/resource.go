package domain

import "github.com/google/uuid"

// ResourceKey ключ ресурса, эксклюзивность календаря которого проверяется
// при бронировании. Либо конкретный мастер, либо общий ресурс салона.
//
// Запись без мастера конфликтует только с другими записями без мастера,
// запись к мастеру - только с записями к тому же мастеру. Выбор сделан
// явно: "без мастера" означает один общий ресурс, а не "любой мастер"
type ResourceKey struct {
	staffID *uuid.UUID
}

// StaffResource возвращает ключ календаря конкретного мастера
func StaffResource(staffID uuid.UUID) ResourceKey {
	return ResourceKey{staffID: &staffID}
}

// AnyResource возвращает ключ общего ресурса салона
func AnyResource() ResourceKey {
	return ResourceKey{}
}

// ResourceFromStaffID конвертирует опциональный staffID в ключ ресурса
func ResourceFromStaffID(staffID *uuid.UUID) ResourceKey {
	if staffID == nil {
		return AnyResource()
	}
	return StaffResource(*staffID)
}

// IsAny возвращает true для общего ресурса
func (k ResourceKey) IsAny() bool {
	return k.staffID == nil
}

// StaffID возвращает ID мастера и true, если ресурс - конкретный мастер
func (k ResourceKey) StaffID() (uuid.UUID, bool) {
	if k.staffID == nil {
		return uuid.Nil, false
	}
	return *k.staffID, true
}

// Equal возвращает true, если ключи указывают на один и тот же ресурс
func (k ResourceKey) Equal(other ResourceKey) bool {
	if k.IsAny() || other.IsAny() {
		return k.IsAny() && other.IsAny()
	}
	return *k.staffID == *other.staffID
}

// String возвращает представление ключа для логов
func (k ResourceKey) String() string {
	if k.staffID == nil {
		return "any"
	}
	return k.staffID.String()
}
