package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanConfig_Validate(t *testing.T) {
	valid := ScanConfig{
		Sector:          SectorAll,
		UniverseSize:    50,
		MaxDaysToExpiry: 60,
		LookbackWindow:  30,
	}

	tests := []struct {
		name    string
		mutate  func(c *ScanConfig)
		wantErr bool
	}{
		{name: "valid with All sector", mutate: func(c *ScanConfig) {}},
		{name: "valid with named sector", mutate: func(c *ScanConfig) { c.Sector = "Energy" }},
		{name: "unknown sector", mutate: func(c *ScanConfig) { c.Sector = "Crypto" }, wantErr: true},
		{name: "empty sector", mutate: func(c *ScanConfig) { c.Sector = "" }, wantErr: true},
		{name: "zero universe", mutate: func(c *ScanConfig) { c.UniverseSize = 0 }, wantErr: true},
		{name: "dte below minimum", mutate: func(c *ScanConfig) { c.MaxDaysToExpiry = MinMaxDaysToExpiry - 1 }, wantErr: true},
		{name: "dte above maximum", mutate: func(c *ScanConfig) { c.MaxDaysToExpiry = MaxMaxDaysToExpiry + 1 }, wantErr: true},
		{name: "dte at bounds", mutate: func(c *ScanConfig) { c.MaxDaysToExpiry = MinMaxDaysToExpiry }},
		{name: "lookback below minimum", mutate: func(c *ScanConfig) { c.LookbackWindow = MinLookbackWindow - 1 }, wantErr: true},
		{name: "lookback at bounds", mutate: func(c *ScanConfig) { c.LookbackWindow = MaxLookbackWindow }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
