package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"nosh/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func placeOrderFixture() entity.PlaceOrderPayload {
	return entity.PlaceOrderPayload{
		Cart:          []entity.OrderLine{{FoodID: 11, Quantity: 2}},
		RestaurantID:  5,
		OrderAmount:   24.5,
		PaymentMethod: "cash_on_delivery",
	}
}

func TestListEndpoints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		status    int
		body      string
		wantNames []string
	}{
		{
			name:      "bare array",
			status:    http.StatusOK,
			body:      `[{"id":1,"name":"Pizza"},{"id":2,"name":"Sushi"}]`,
			wantNames: []string{"Pizza", "Sushi"},
		},
		{
			name:      "paginated envelope",
			status:    http.StatusOK,
			body:      `{"total_size":1,"limit":10,"offset":0,"restaurants":[{"id":5,"name":"Bella"}]}`,
			wantNames: []string{"Bella"},
		},
		{
			name:   "envelope without the array field",
			status: http.StatusOK,
			body:   `{"total_size":0}`,
		},
		{
			name:   "not found is an empty state",
			status: http.StatusNotFound,
			body:   `{"message":"nothing here"}`,
		},
		{
			name:   "null body",
			status: http.StatusOK,
			body:   `null`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client, _ := newTestClient(server.URL)
			gateway := NewCatalogAPI(client)

			var names []string
			if tt.name == "bare array" {
				categories, err := gateway.Categories(context.Background())
				require.NoError(t, err)
				for _, c := range categories {
					names = append(names, c.Name)
				}
			} else {
				restaurants, err := gateway.Restaurants(context.Background())
				require.NoError(t, err)
				for _, r := range restaurants {
					names = append(names, r.Name)
				}
			}

			assert.Equal(t, tt.wantNames, names)
		})
	}
}

func TestOrderPlaceReturnsOrderID(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, endpointOrderPlace, r.URL.Path)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"message":"order placed","order_id":118}`))
	}))
	defer server.Close()

	client, _ := newTestClient(server.URL)
	gateway := NewOrderAPI(client)

	orderID, err := gateway.Place(context.Background(), placeOrderFixture())
	require.NoError(t, err)
	assert.Equal(t, 118, orderID)
}

func TestZoneCheck(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("zone_id") == "[1]" {
			w.WriteHeader(http.StatusOK)

			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client, _ := newTestClient(server.URL)
	gateway := NewZoneAPI(client)

	inside, err := gateway.Check(context.Background(), 23.8, 90.4, "[1]")
	require.NoError(t, err)
	assert.True(t, inside)

	outside, err := gateway.Check(context.Background(), 23.8, 90.4, "[9]")
	require.NoError(t, err)
	assert.False(t, outside)
}
