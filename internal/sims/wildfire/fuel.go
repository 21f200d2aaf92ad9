package wildfire

// FuelClass identifies one of the Anderson 13 fire behavior fuel models.
// Class 0 is the designated fallback for identifiers the table does not know.
type FuelClass uint8

const (
	FuelUnknown FuelClass = iota
	FuelShortGrass
	FuelTimberGrass
	FuelTallGrass
	FuelChaparral
	FuelBrush
	FuelDormantBrush
	FuelSouthernRough
	FuelClosedTimberLitter
	FuelHardwoodLitter
	FuelTimberUnderstory
	FuelLightSlash
	FuelMediumSlash
	FuelHeavySlash
)

// FuelRecord holds the static physical parameters of a fuel class. Fuel
// loads are tons/acre, surface-area-to-volume ratios ft²/ft³, bed depth
// feet, extinction moisture percent and heat content Btu/lb.
type FuelRecord struct {
	ID   FuelClass
	Name string

	Load1h   float64
	Load10h  float64
	Load100h float64

	SAV1h   float64
	SAV10h  float64
	SAV100h float64

	BedDepth           float64
	ExtinctionMoisture float64
	HeatContent        float64

	// BaseSpread is the unmodified per-step probability that fire crosses
	// an edge into a cell of this class.
	BaseSpread float64
}

// fuelTable is built once from literals and never re-derived at runtime.
var fuelTable = map[FuelClass]FuelRecord{
	FuelShortGrass:         {ID: FuelShortGrass, Name: "short grass", Load1h: 0.74, SAV1h: 3500, SAV10h: 109, SAV100h: 30, BedDepth: 1.0, ExtinctionMoisture: 12, HeatContent: 8000, BaseSpread: 0.35},
	FuelTimberGrass:        {ID: FuelTimberGrass, Name: "timber grass and understory", Load1h: 2.00, Load10h: 1.00, Load100h: 0.50, SAV1h: 3000, SAV10h: 109, SAV100h: 30, BedDepth: 1.0, ExtinctionMoisture: 15, HeatContent: 8000, BaseSpread: 0.30},
	FuelTallGrass:          {ID: FuelTallGrass, Name: "tall grass", Load1h: 3.01, SAV1h: 1500, SAV10h: 109, SAV100h: 30, BedDepth: 2.5, ExtinctionMoisture: 25, HeatContent: 8000, BaseSpread: 0.35},
	FuelChaparral:          {ID: FuelChaparral, Name: "chaparral", Load1h: 5.01, Load10h: 4.01, Load100h: 2.00, SAV1h: 2000, SAV10h: 109, SAV100h: 30, BedDepth: 6.0, ExtinctionMoisture: 20, HeatContent: 8000, BaseSpread: 0.32},
	FuelBrush:              {ID: FuelBrush, Name: "brush", Load1h: 1.00, Load10h: 0.50, SAV1h: 2000, SAV10h: 109, SAV100h: 30, BedDepth: 2.0, ExtinctionMoisture: 20, HeatContent: 8000, BaseSpread: 0.28},
	FuelDormantBrush:       {ID: FuelDormantBrush, Name: "dormant brush, hardwood slash", Load1h: 1.50, Load10h: 2.50, Load100h: 2.00, SAV1h: 1750, SAV10h: 109, SAV100h: 30, BedDepth: 2.5, ExtinctionMoisture: 25, HeatContent: 8000, BaseSpread: 0.26},
	FuelSouthernRough:      {ID: FuelSouthernRough, Name: "southern rough", Load1h: 1.13, Load10h: 1.87, Load100h: 1.50, SAV1h: 1750, SAV10h: 109, SAV100h: 30, BedDepth: 2.5, ExtinctionMoisture: 40, HeatContent: 8000, BaseSpread: 0.26},
	FuelClosedTimberLitter: {ID: FuelClosedTimberLitter, Name: "closed timber litter", Load1h: 1.50, Load10h: 1.00, Load100h: 2.50, SAV1h: 2000, SAV10h: 109, SAV100h: 30, BedDepth: 0.2, ExtinctionMoisture: 30, HeatContent: 8000, BaseSpread: 0.10},
	FuelHardwoodLitter:     {ID: FuelHardwoodLitter, Name: "hardwood litter", Load1h: 2.92, Load10h: 0.41, Load100h: 0.15, SAV1h: 2500, SAV10h: 109, SAV100h: 30, BedDepth: 0.2, ExtinctionMoisture: 25, HeatContent: 8000, BaseSpread: 0.15},
	FuelTimberUnderstory:   {ID: FuelTimberUnderstory, Name: "timber with litter and understory", Load1h: 3.01, Load10h: 2.00, Load100h: 5.01, SAV1h: 2000, SAV10h: 109, SAV100h: 30, BedDepth: 1.0, ExtinctionMoisture: 25, HeatContent: 8000, BaseSpread: 0.20},
	FuelLightSlash:         {ID: FuelLightSlash, Name: "light logging slash", Load1h: 1.50, Load10h: 4.51, Load100h: 5.51, SAV1h: 1500, SAV10h: 109, SAV100h: 30, BedDepth: 1.0, ExtinctionMoisture: 15, HeatContent: 8000, BaseSpread: 0.15},
	FuelMediumSlash:        {ID: FuelMediumSlash, Name: "medium logging slash", Load1h: 4.01, Load10h: 14.03, Load100h: 16.53, SAV1h: 1500, SAV10h: 109, SAV100h: 30, BedDepth: 2.3, ExtinctionMoisture: 20, HeatContent: 8000, BaseSpread: 0.18},
	FuelHeavySlash:         {ID: FuelHeavySlash, Name: "heavy logging slash", Load1h: 7.01, Load10h: 23.04, Load100h: 28.05, SAV1h: 1500, SAV10h: 109, SAV100h: 30, BedDepth: 3.0, ExtinctionMoisture: 25, HeatContent: 8000, BaseSpread: 0.22},
}

// unknownFuel stands in for identifiers missing from the table. It is close
// to non-burnable so unmapped source data cannot drive the spread.
var unknownFuel = FuelRecord{ID: FuelUnknown, Name: "unknown", BaseSpread: 0.01}

// LookupFuel resolves a fuel class to its record. The second result reports
// whether the unknown-class fallback was substituted, so callers can count
// bad identifiers instead of silently absorbing them.
func LookupFuel(id FuelClass) (FuelRecord, bool) {
	rec, ok := fuelTable[id]
	if !ok {
		return unknownFuel, true
	}
	return rec, false
}

// FuelClasses lists the known class identifiers, smallest first.
func FuelClasses() []FuelClass {
	out := make([]FuelClass, 0, len(fuelTable))
	for id := FuelShortGrass; id <= FuelHeavySlash; id++ {
		if _, ok := fuelTable[id]; ok {
			out = append(out, id)
		}
	}
	return out
}
