package entity

// Result column keys, matching the field names the scan service emits.
const (
	ColumnTicker          = "Ticker"
	ColumnSector          = "Sector"
	ColumnPrice           = "Price"
	ColumnDistSMA20Pct    = "Dist SMA20 %"
	ColumnDistSMA50Pct    = "Dist SMA50 %"
	ColumnVRP             = "VRP"
	ColumnIV              = "IV"
	ColumnRV              = "RV"
	ColumnCallWall        = "Call Wall"
	ColumnPutWall         = "Put Wall"
	ColumnDistCallWallPct = "Dist Call Wall %"
	ColumnDistPutWallPct  = "Dist Put Wall %"
)

// ResultRow is one scored row of a completed scan, produced by the remote
// service and treated as read-only here. Numeric fields are pointers so a
// field the service omitted stays distinguishable from a real zero.
type ResultRow struct {
	Ticker          string   `json:"Ticker"`
	Sector          string   `json:"Sector"`
	Price           *float64 `json:"Price,omitempty"`
	DistSMA20Pct    *float64 `json:"Dist SMA20 %,omitempty"`
	DistSMA50Pct    *float64 `json:"Dist SMA50 %,omitempty"`
	VRP             *float64 `json:"VRP,omitempty"`
	IV              *float64 `json:"IV,omitempty"`
	RV              *float64 `json:"RV,omitempty"`
	CallWall        *float64 `json:"Call Wall,omitempty"`
	PutWall         *float64 `json:"Put Wall,omitempty"`
	DistCallWallPct *float64 `json:"Dist Call Wall %,omitempty"`
	DistPutWallPct  *float64 `json:"Dist Put Wall %,omitempty"`
}

// Metric returns the named numeric column and whether the service supplied
// it. Ranking paths must honour the boolean; display paths should use
// DisplayValue instead.
func (r ResultRow) Metric(columnKey string) (float64, bool) {
	var v *float64
	switch columnKey {
	case ColumnPrice:
		v = r.Price
	case ColumnDistSMA20Pct:
		v = r.DistSMA20Pct
	case ColumnDistSMA50Pct:
		v = r.DistSMA50Pct
	case ColumnVRP:
		v = r.VRP
	case ColumnIV:
		v = r.IV
	case ColumnRV:
		v = r.RV
	case ColumnCallWall:
		v = r.CallWall
	case ColumnPutWall:
		v = r.PutWall
	case ColumnDistCallWallPct:
		v = r.DistCallWallPct
	case ColumnDistPutWallPct:
		v = r.DistPutWallPct
	default:
		return 0, false
	}
	if v == nil {
		return 0, false
	}
	return *v, true
}

// DisplayValue returns the named numeric column, defaulting missing fields
// to 0 so display logic never sees an invalid number.
func (r ResultRow) DisplayValue(columnKey string) float64 {
	v, _ := r.Metric(columnKey)
	return v
}
