//go:build unit

package config_test

import (
	"testing"

	"salon-booking/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults without any environment", func(t *testing.T) {
		t.Chdir(t.TempDir())

		cfg, err := config.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, "file", cfg.Store.Driver)
		assert.Equal(t, 2, cfg.Booking.SlotCapacity)
		assert.Equal(t, "54", cfg.Booking.PhoneCountryCode)
		assert.False(t, cfg.WhatsApp.Enabled())
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("PORT", "9090")
		t.Setenv("SLOT_CAPACITY", "3")
		t.Setenv("WHATSAPP_ACCOUNT_SID", "AC123")
		t.Setenv("WHATSAPP_AUTH_TOKEN", "secret")
		t.Setenv("WHATSAPP_FROM", "+14155238886")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, 3, cfg.Booking.SlotCapacity)
		assert.True(t, cfg.WhatsApp.Enabled())
	})

	t.Run("unknown store driver is rejected", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("STORE_DRIVER", "redis")

		_, err := config.LoadConfig()
		assert.ErrorContains(t, err, "STORE_DRIVER")
	})

	t.Run("zero capacity is rejected", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("SLOT_CAPACITY", "0")

		_, err := config.LoadConfig()
		assert.ErrorContains(t, err, "SLOT_CAPACITY")
	})
}

func TestBookingLocation(t *testing.T) {
	cfg := config.BookingConfig{TimeZone: "Not/AZone"}
	loc := cfg.Location()
	assert.Equal(t, "ART", loc.String())
}

func TestBuildDSN(t *testing.T) {
	cfg := config.NewTestConfig().DB
	cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode, cfg.TimeZone =
		"db", "5432", "u", "p", "salon", "disable", "UTC"
	assert.Equal(t, "postgres://u:p@db:5432/salon?sslmode=disable&timezone=UTC", cfg.BuildDSN())
}
