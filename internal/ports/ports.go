package ports

import (
	"context"

	"github.com/aos-tools/intake-server/internal/domain"
	"github.com/aos-tools/intake-server/internal/forms"
)

// IntakeRepository persists the single intake record. Load never fails: a
// missing or unreadable record degrades to the normalized default. The
// address operations are read-modify-write over the whole record — the
// address list is never persisted independently.
type IntakeRepository interface {
	Load(ctx context.Context) (domain.IntakeData, error)
	Save(ctx context.Context, data domain.IntakeData) error
	Clear(ctx context.Context) error

	Addresses(ctx context.Context) ([]domain.AddressEntry, error)
	AddAddress(ctx context.Context, entry domain.AddressEntry) error
	UpdateAddress(ctx context.Context, entry domain.AddressEntry) error
	RemoveAddress(ctx context.Context, id string) error
}

// FormFiller renders a filled document from a payload via the remote fill
// service. The returned bytes are an opaque document.
type FormFiller interface {
	Fill(ctx context.Context, slug string, payload forms.Payload) ([]byte, error)
	Fields(ctx context.Context, slug string) ([]string, error)
}
