package repository

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/sm107-uiuc/sparemate-hub/internal/model"
)

type BatchCreator interface {
	CreateBatch(ctx context.Context, parts []*model.Part) error
}

var manufacturers = []string{"OEM Solutions", "TechPart", "AutoElite", "MechaWorks", "PrimeDrive", "VehiclePro"}

var carModels = map[string][]string{
	"Toyota":     {"Camry", "Corolla", "RAV4", "Highlander", "Tacoma"},
	"Honda":      {"Civic", "Accord", "CR-V", "Pilot", "Odyssey"},
	"Ford":       {"F-150", "Escape", "Explorer", "Mustang", "Focus"},
	"BMW":        {"3 Series", "5 Series", "X3", "X5", "7 Series"},
	"Mercedes":   {"C-Class", "E-Class", "GLC", "S-Class", "GLE"},
	"Audi":       {"A4", "Q5", "A6", "Q7", "A3"},
	"Volkswagen": {"Golf", "Jetta", "Tiguan", "Passat", "Atlas"},
	"Nissan":     {"Altima", "Rogue", "Sentra", "Pathfinder", "Murano"},
	"Hyundai":    {"Elantra", "Tucson", "Santa Fe", "Sonata", "Kona"},
	"Kia":        {"Sorento", "Sportage", "Forte", "Telluride", "Soul"},
}

// Brand order is fixed so a seeded generator is reproducible.
var carBrands = []string{"Toyota", "Honda", "Ford", "BMW", "Mercedes", "Audi", "Volkswagen", "Nissan", "Hyundai", "Kia"}

type categoryTemplate struct {
	names        []string
	descriptions []string
	basePrice    int
	priceSpread  int
}

var templates = map[model.Category]categoryTemplate{
	model.CategoryEngine: {
		names: []string{"Air Filter", "Oil Filter", "Camshaft", "Timing Belt", "Fuel Injector"},
		descriptions: []string{
			"High-performance air filter for improved airflow and engine protection",
			"Premium synthetic oil filter with extended life and superior filtration",
			"Precision-engineered camshaft with optimized valve timing for improved performance",
			"Heavy-duty timing belt with reinforced construction for long service life",
			"Direct replacement fuel injector with improved atomization for better efficiency",
		},
		basePrice: 50, priceSpread: 450,
	},
	model.CategoryTransmission: {
		names: []string{"Transmission Fluid", "Transmission Filter", "Clutch Kit", "Transmission Mount", "Transmission Cooler"},
		descriptions: []string{
			"Synthetic transmission fluid formulated for smooth shifts and wear protection",
			"Precision transmission filter designed for maximum fluid flow and contaminant capture",
			"Heavy-duty clutch kit engineered for durability and consistent engagement",
			"Reinforced transmission mount designed to reduce vibration and maintain alignment",
			"Direct-fit transmission cooler for optimal operating temperatures",
		},
		basePrice: 100, priceSpread: 900,
	},
	model.CategorySuspension: {
		names: []string{"Shock Absorber", "Coil Spring", "Control Arm", "Sway Bar Link", "Strut Assembly"},
		descriptions: []string{
			"Performance shock absorbers with precision valving for improved handling",
			"Heavy-duty coil springs designed for stability and load support",
			"Premium control arms with enhanced bushings for reduced noise and vibration",
			"Reinforced sway bar links for improved cornering and stability",
			"Direct-fit strut assembly with pre-assembled components for easy installation",
		},
		basePrice: 80, priceSpread: 320,
	},
	model.CategoryBrakes: {
		names: []string{"Brake Pads", "Brake Rotor", "Brake Fluid", "Brake Line", "Brake Caliper"},
		descriptions: []string{
			"Ceramic brake pads engineered for low noise and dust with excellent stopping power",
			"Premium brake rotors with anti-corrosion coating for extended life",
			"High-performance brake fluid with high boiling point for fade resistance",
			"Stainless steel brake lines for improved pedal feel and consistent performance",
			"Pre-assembled brake calipers with brackets for direct replacement",
		},
		basePrice: 40, priceSpread: 260,
	},
	model.CategoryElectrical: {
		names: []string{"Alternator", "Battery", "Oxygen Sensor", "Ignition Coil", "Starter Motor"},
		descriptions: []string{
			"High-output alternator designed for increased electrical demand and reliability",
			"Premium AGM battery with enhanced cycle life and deep discharge recovery",
			"Direct-fit oxygen sensor with fast response time for optimal fuel efficiency",
			"High-performance ignition coils for improved spark energy and engine performance",
			"Enhanced starter motor with upgraded components for reliable cold starts",
		},
		basePrice: 60, priceSpread: 340,
	},
	model.CategoryInterior: {
		names: []string{"Floor Mats", "Dashboard", "Steering Wheel Controls", "Seat Covers", "HVAC Control Module"},
		descriptions: []string{
			"Custom-fit floor mats with reinforced heel pad and water-resistant construction",
			"Direct replacement dashboard with OEM-matching finish and texture",
			"Enhanced steering wheel controls with improved tactile response",
			"Premium seat covers designed for exact fit and long-lasting durability",
			"Upgraded HVAC control module for improved climate control performance",
		},
		basePrice: 30, priceSpread: 270,
	},
	model.CategoryExterior: {
		names: []string{"Headlight Assembly", "Bumper Cover", "Door Handle", "Side Mirror", "Windshield Wipers"},
		descriptions: []string{
			"Direct-fit headlight assemblies with improved light output and beam pattern",
			"Reinforced bumper covers with OEM-matching finish and mounting points",
			"Weather-resistant door handles with improved mechanism for long-term reliability",
			"Enhanced side mirrors with integrated turn signals and blind spot indicators",
			"Premium windshield wipers with silicone blade technology for clear visibility",
		},
		basePrice: 50, priceSpread: 350,
	},
	model.CategoryHVAC: {
		names: []string{"A/C Compressor", "Heater Core", "Cabin Air Filter", "Blower Motor", "Condenser"},
		descriptions: []string{
			"High-capacity A/C compressor designed for improved cooling performance",
			"Enhanced heater core with optimized flow for faster cabin heating",
			"Direct-fit cabin air filter with activated carbon for odor filtration",
			"Premium blower motor with balanced operation for reduced noise",
			"Optimized condenser with corrosion-resistant coating for extended service life",
		},
		basePrice: 70, priceSpread: 330,
	},
}

const imagesPerCategory = 3

// GenerateParts builds a random catalog of size parts with ids part-1..part-size.
// A zero seed draws a random one.
func GenerateParts(size int, seed uint64) []*model.Part {
	faker := gofakeit.New(seed)

	parts := make([]*model.Part, 0, size)
	for i := 1; i <= size; i++ {
		category := model.Categories[faker.IntN(len(model.Categories))]
		manufacturer := manufacturers[faker.IntN(len(manufacturers))]
		tmpl := templates[category]

		parts = append(parts, &model.Part{
			ID:            fmt.Sprintf("part-%d", i),
			Name:          manufacturer + " " + tmpl.names[faker.IntN(len(tmpl.names))],
			Description:   tmpl.descriptions[faker.IntN(len(tmpl.descriptions))],
			Price:         float64(tmpl.basePrice + faker.IntN(tmpl.priceSpread)),
			Category:      category,
			Compatibility: compatibility(faker),
			Manufacturer:  manufacturer,
			Stock:         faker.IntN(100),
			ImageURL:      fmt.Sprintf("/images/%s-%d.jpg", strings.ToLower(string(category)), i%imagesPerCategory+1),
			Rating:        3 + faker.Float64()*2,
			Reviews:       faker.IntN(500),
			SKU:           sku(category, manufacturer, i),
		})
	}

	return parts
}

func compatibility(faker *gofakeit.Faker) []string {
	brand := carBrands[faker.IntN(len(carBrands))]
	models := carModels[brand]

	n := faker.IntN(3) + 1
	out := make([]string, 0, n)
	for range n {
		yearStart := 2010 + faker.IntN(10)
		yearEnd := yearStart + faker.IntN(5) + 1
		vehicle := fmt.Sprintf("%s %s (%d-%d)", brand, models[faker.IntN(len(models))], yearStart, yearEnd)

		if !slices.Contains(out, vehicle) {
			out = append(out, vehicle)
		}
	}

	return out
}

func sku(category model.Category, manufacturer string, n int) string {
	return fmt.Sprintf("%s-%s-%05d",
		strings.ToUpper(string(category)[:3]),
		strings.ToUpper(manufacturer[:3]),
		n,
	)
}

// PartsBootstrap fills the catalog once at start-up.
func PartsBootstrap(ctx context.Context, c BatchCreator, size int, seed uint64) error {
	return c.CreateBatch(ctx, GenerateParts(size, seed))
}
