// ABOUTME: Compiled-in cabinet and processor tables
// ABOUTME: Values are nominal manufacturer figures for planning, not certified specs

package catalog

import "github.com/markalston/ledwall-calc/backend/models"

// DefaultCabinetID is the cabinet selected when nothing else is specified
const DefaultCabinetID = "p26-indoor-500"

var builtinCabinets = []models.Cabinet{
	{
		ID: "p39-rental-500x1000", Model: "PL3.9 Pro", Brand: "Absen", Pitch: 3.91,
		WidthMm: 500, HeightMm: 1000, PixelsW: 128, PixelsH: 256,
		WeightKg: 12.5, MaxPowerW: 350, AvgPowerW: 120,
	},
	{
		ID: "p26-indoor-500", Model: "BP2", Brand: "ROE Visual", Pitch: 2.6,
		WidthMm: 500, HeightMm: 500, PixelsW: 192, PixelsH: 192,
		WeightKg: 7.5, MaxPowerW: 200, AvgPowerW: 70,
	},
	{
		ID: "p29-indoor-500", Model: "BO3", Brand: "ROE Visual", Pitch: 2.97,
		WidthMm: 500, HeightMm: 500, PixelsW: 168, PixelsH: 168,
		WeightKg: 7.8, MaxPowerW: 190, AvgPowerW: 65,
	},
	{
		ID: "p19-indoor-500", Model: "Acclaim A1.9", Brand: "Absen", Pitch: 1.95,
		WidthMm: 500, HeightMm: 500, PixelsW: 256, PixelsH: 256,
		WeightKg: 8.0, MaxPowerW: 220, AvgPowerW: 75,
	},
	{
		ID: "p15-cob-600x337", Model: "UMini 1.5", Brand: "Unilumin", Pitch: 1.56,
		WidthMm: 600, HeightMm: 337.5, PixelsW: 384, PixelsH: 216,
		WeightKg: 6.8, MaxPowerW: 150, AvgPowerW: 50,
	},
	{
		ID: "p48-outdoor-500x1000", Model: "X4.8", Brand: "INFiLED", Pitch: 4.81,
		WidthMm: 500, HeightMm: 1000, PixelsW: 104, PixelsH: 208,
		WeightKg: 13.5, MaxPowerW: 450, AvgPowerW: 150,
	},
}

var builtinProcessors = []models.Processor{
	{ID: "novastar-vx600", Name: "VX600", Brand: "NovaStar", MaxPixels: 3_900_000, MaxWidth: 10240, MaxHeight: 8192},
	{ID: "novastar-vx1000", Name: "VX1000", Brand: "NovaStar", MaxPixels: 6_500_000, MaxWidth: 10240, MaxHeight: 8192},
	{ID: "novastar-mctrl4k", Name: "MCTRL4K", Brand: "NovaStar", MaxPixels: 8_800_000, MaxWidth: 7680, MaxHeight: 7680},
	{ID: "brompton-s4", Name: "Tessera S4", Brand: "Brompton", MaxPixels: 2_100_000, MaxWidth: 4096, MaxHeight: 2160},
	{ID: "brompton-sx40", Name: "Tessera SX40", Brand: "Brompton", MaxPixels: 9_000_000, MaxWidth: 4096, MaxHeight: 2160},
	{ID: "colorlight-x16", Name: "X16", Brand: "Colorlight", MaxPixels: 10_400_000, MaxWidth: 16384, MaxHeight: 8192},
}

// Builtin returns the compiled-in catalog
func Builtin() *Catalog {
	c, err := New(builtinCabinets, builtinProcessors, DefaultCabinetID)
	if err != nil {
		panic("builtin catalog is invalid: " + err.Error())
	}
	return c
}
