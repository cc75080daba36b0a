package agro

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// LoadOverrides merges crop profile rows from an optional workbook into the
// built-in registry. Agronomists maintain the sheet; invalid rows are skipped
// rather than failing startup. Expected headers on the first sheet:
// Crop, WaterMin, WaterMax, TempOptimal, TempMin, TempMax, HumidityOptimal
// and optionally IntervalDays.
func LoadOverrides(path string) (int, error) {
	x, err := excelize.OpenFile(path)
	if err != nil {
		return 0, err
	}
	defer x.Close()

	sheet := x.GetSheetName(0)
	rows, err := x.GetRows(sheet)
	if err != nil {
		return 0, err
	}
	if len(rows) < 2 {
		return 0, fmt.Errorf("sheet %q has no data rows", sheet)
	}

	norm := func(s string) string {
		s = strings.ToLower(strings.TrimSpace(s))
		s = strings.ReplaceAll(s, " ", "")
		s = strings.ReplaceAll(s, "_", "")
		return s
	}
	hmap := map[string]int{}
	for i, h := range rows[0] {
		hmap[norm(h)] = i
	}
	col := func(rec []string, keys ...string) string {
		for _, k := range keys {
			if idx, ok := hmap[k]; ok && idx < len(rec) {
				return strings.TrimSpace(rec[idx])
			}
		}
		return ""
	}
	num := func(s string) (float64, bool) {
		v, err := strconv.ParseFloat(s, 64)
		return v, err == nil
	}

	if _, ok := hmap["crop"]; !ok {
		return 0, fmt.Errorf("sheet %q missing Crop column", sheet)
	}

	loaded := 0
	for _, rec := range rows[1:] {
		name := col(rec, "crop", "cropname")
		key := NormalizeKey(name)
		if key == "" {
			continue
		}
		wmin, ok1 := num(col(rec, "watermin"))
		wmax, ok2 := num(col(rec, "watermax"))
		topt, ok3 := num(col(rec, "tempoptimal", "topt"))
		if !ok1 || !ok2 || !ok3 || wmin <= 0 || wmax < wmin {
			continue
		}
		p := CropProfile{Name: key, WaterMin: wmin, WaterMax: wmax, TempOptimal: topt}
		if v, ok := num(col(rec, "tempmin")); ok {
			p.TempMin = v
		}
		if v, ok := num(col(rec, "tempmax")); ok {
			p.TempMax = v
		}
		if v, ok := num(col(rec, "humidityoptimal", "humidity")); ok {
			p.HumidityOptimal = v
		} else {
			p.HumidityOptimal = cropProfiles[DefaultCropKey].HumidityOptimal
		}
		cropProfiles[key] = p
		if v, err := strconv.Atoi(col(rec, "intervaldays", "interval")); err == nil && v > 0 {
			cropIntervals[key] = v
		}
		loaded++
	}
	return loaded, nil
}
