package impl

import (
	"context"
	"testing"

	"nosh/internal/domain/entity"
	domainerrors "nosh/internal/domain/errors"
	"nosh/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAddressGateway struct {
	added []entity.Address
}

func (f *fakeAddressGateway) List(context.Context) ([]entity.Address, error) { return nil, nil }

func (f *fakeAddressGateway) Add(_ context.Context, a entity.Address) error {
	f.added = append(f.added, a)

	return nil
}

func (f *fakeAddressGateway) Update(context.Context, int, entity.Address) error { return nil }
func (f *fakeAddressGateway) Delete(context.Context, int) error                 { return nil }

func TestAddressService_AddValidation(t *testing.T) {
	gateway := &fakeAddressGateway{}
	service := NewAddressService(gateway, discardLogger())

	tests := []struct {
		name    string
		address entity.Address
		wantErr bool
	}{
		{
			name: "valid home address",
			address: entity.Address{
				Address:             "House 12, Road 27, Dhanmondi",
				Latitude:            23.7808,
				Longitude:           90.4219,
				AddressType:         "home",
				ContactPersonName:   "Anik Rahman",
				ContactPersonNumber: "+8801700000000",
			},
		},
		{
			name: "missing contact",
			address: entity.Address{
				Address:     "House 12",
				Latitude:    23.7808,
				Longitude:   90.4219,
				AddressType: "home",
			},
			wantErr: true,
		},
		{
			name: "latitude out of range",
			address: entity.Address{
				Address:             "House 12",
				Latitude:            123,
				Longitude:           90.4219,
				AddressType:         "home",
				ContactPersonName:   "Anik Rahman",
				ContactPersonNumber: "+8801700000000",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.Add(context.Background(), tt.address)
			if tt.wantErr {
				require.Error(t, err)

				var appErr domainerrors.AppError
				require.True(t, errors.As(err, &appErr))
				assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())

				return
			}
			require.NoError(t, err)
		})
	}

	assert.Len(t, gateway.added, 1)
}
