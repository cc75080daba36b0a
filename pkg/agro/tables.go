package agro

// Static agronomic reference data. Every lookup goes through NormalizeKey, so
// table keys are stored pre-normalized (lower case, no diacritics). Unknown
// crops resolve to the designated default row, unknown soils to multiplier 1.0.

type CropProfile struct {
	Name            string  `json:"name"`
	WaterMin        float64 `json:"water_min"` // liters/m2 per irrigation event
	WaterMax        float64 `json:"water_max"`
	TempOptimal     float64 `json:"temp_optimal"` // Celsius
	TempMin         float64 `json:"temp_min"`
	TempMax         float64 `json:"temp_max"`
	HumidityOptimal float64 `json:"humidity_optimal"` // percent
}

const DefaultCropKey = "default"

var cropProfiles = map[string]CropProfile{
	"rice":      {Name: "rice", WaterMin: 6.0, WaterMax: 10.0, TempOptimal: 27, TempMin: 20, TempMax: 35, HumidityOptimal: 80},
	"corn":      {Name: "corn", WaterMin: 4.0, WaterMax: 7.0, TempOptimal: 25, TempMin: 15, TempMax: 33, HumidityOptimal: 65},
	"sugarcane": {Name: "sugarcane", WaterMin: 5.0, WaterMax: 8.5, TempOptimal: 28, TempMin: 20, TempMax: 36, HumidityOptimal: 70},
	"cassava":   {Name: "cassava", WaterMin: 3.0, WaterMax: 5.5, TempOptimal: 27, TempMin: 18, TempMax: 35, HumidityOptimal: 60},
	"coffee":    {Name: "coffee", WaterMin: 3.5, WaterMax: 6.0, TempOptimal: 22, TempMin: 15, TempMax: 30, HumidityOptimal: 70},
	"tomato":    {Name: "tomato", WaterMin: 3.0, WaterMax: 5.0, TempOptimal: 24, TempMin: 15, TempMax: 30, HumidityOptimal: 65},
	"banana":    {Name: "banana", WaterMin: 5.0, WaterMax: 8.0, TempOptimal: 27, TempMin: 18, TempMax: 34, HumidityOptimal: 75},
	"pepper":    {Name: "pepper", WaterMin: 2.5, WaterMax: 4.5, TempOptimal: 26, TempMin: 18, TempMax: 32, HumidityOptimal: 70},
	DefaultCropKey: {Name: "default", WaterMin: 3.5, WaterMax: 6.0, TempOptimal: 25, TempMin: 15, TempMax: 33, HumidityOptimal: 65},
}

// cropAliases maps normalized local-language spellings onto canonical rows.
var cropAliases = map[string]string{
	"lua":      "rice",
	"paddy":    "rice",
	"maize":    "corn",
	"ngo":      "corn",
	"mia":      "sugarcane",
	"san":      "cassava",
	"ca phe":   "coffee",
	"ca chua":  "tomato",
	"chuoi":    "banana",
	"ho tieu":  "pepper",
	"hat tieu": "pepper",
}

// CropProfileFor resolves a free-text crop name to a profile, falling back to
// the default row when the name is unknown or empty.
func CropProfileFor(name string) CropProfile {
	key := NormalizeKey(name)
	if canon, ok := cropAliases[key]; ok {
		key = canon
	}
	if p, ok := cropProfiles[key]; ok {
		return p
	}
	return cropProfiles[DefaultCropKey]
}

// Soil water-retention multipliers, roughly [0.8, 1.4]. Lower retention means
// more water per event.
var soilMultipliers = map[string]float64{
	"sandy":  1.3,
	"sand":   1.3,
	"cat":    1.3, // đất cát
	"loamy":  1.0,
	"loam":   1.0,
	"thit":   1.0, // đất thịt
	"silty":  0.95,
	"silt":   0.95,
	"clay":   0.85,
	"set":    0.85, // đất sét
	"peaty":  1.1,
	"chalky": 1.2,
	"laterite": 1.15,
	"do bazan": 0.9,
}

// soilAliases maps full-phrase local spellings onto the canonical rows, the
// same way cropAliases does for crops. "đất sét" normalizes to "dat set" and
// must land on the "set" row.
var soilAliases = map[string]string{
	"dat cat":  "cat",
	"dat set":  "set",
	"dat thit": "thit",
}

func soilKey(name string) string {
	key := NormalizeKey(name)
	if canon, ok := soilAliases[key]; ok {
		return canon
	}
	return key
}

// SoilMultiplierFor returns 1.0 for unknown soils.
func SoilMultiplierFor(name string) float64 {
	if m, ok := soilMultipliers[soilKey(name)]; ok {
		return m
	}
	return 1.0
}

// Per-crop base irrigation interval in days, used when no advisory estimate
// supplies one. Crops missing here fall back to the builder's 3-day default.
var cropIntervals = map[string]int{
	"rice":      2,
	"corn":      3,
	"sugarcane": 3,
	"cassava":   5,
	"coffee":    4,
	"tomato":    2,
	"banana":    3,
	"pepper":    3,
}

func IrrigationIntervalFor(name string) (int, bool) {
	key := NormalizeKey(name)
	if canon, ok := cropAliases[key]; ok {
		key = canon
	}
	d, ok := cropIntervals[key]
	return d, ok
}

// Simplified daily figures for the AI-free fallback planner. This table is
// intentionally separate from the crop profiles above.
var fallbackDailyLiters = map[string]float64{
	"rice":      8,
	"corn":      6,
	"sugarcane": 7,
	"cassava":   4,
	"coffee":    5,
	"tomato":    4,
	"banana":    6,
	"pepper":    3,
}

const fallbackDefaultLiters = 5

func FallbackDailyLitersFor(name string) float64 {
	key := NormalizeKey(name)
	if canon, ok := cropAliases[key]; ok {
		key = canon
	}
	if v, ok := fallbackDailyLiters[key]; ok {
		return v
	}
	return fallbackDefaultLiters
}

// FallbackSoilFactor classifies a soil name into the fallback planner's two
// coarse tiers: sandy-equivalent soils drain fast, clay-equivalent soils hold.
func FallbackSoilFactor(name string) float64 {
	switch soilKey(name) {
	case "sandy", "sand", "cat", "chalky":
		return 1.2
	case "clay", "set":
		return 0.9
	}
	return 1.0
}

// Traditional (flood/furrow) per-event water usage in liters/m2, used only by
// the savings ledger. Kept independent from the crop profile table: different
// units of comparison and different crop coverage.
var traditionalUsage = map[string]float64{
	"rice":      14,
	"corn":      10,
	"sugarcane": 12,
	"coffee":    9,
	"tomato":    8,
	"banana":    11,
}

const traditionalDefaultUsage = 10

func TraditionalUsageFor(name string) float64 {
	key := NormalizeKey(name)
	if canon, ok := cropAliases[key]; ok {
		key = canon
	}
	if v, ok := traditionalUsage[key]; ok {
		return v
	}
	return traditionalDefaultUsage
}
