package util

import (
	"database/sql/driver"
	"fmt"

	"github.com/google/uuid"
)

// UUIDAsBlob is stored as blob(16) (bytea on postgres) but used as a uuid.UUID
type UUIDAsBlob uuid.UUID

func NewUUIDAsBlob() UUIDAsBlob {
	return UUIDAsBlob(uuid.New())
}

func (t UUIDAsBlob) Value() (driver.Value, error) {
	buf := [16]byte(t)
	return driver.Value(buf[:]), nil
}

func (t UUIDAsBlob) UUID() uuid.UUID {
	return uuid.UUID(t)
}

func (t UUIDAsBlob) String() string {
	return t.UUID().String()
}

func (t *UUIDAsBlob) Scan(src interface{}) error {
	slice, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("expected []byte, got %T", src)
	}

	id, err := uuid.FromBytes(slice)
	if err != nil {
		return err
	}
	*t = UUIDAsBlob(id)

	return nil
}
