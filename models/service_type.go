package models

// ServiceType describes one bookable car-care service.
type ServiceType struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Subtitle string   `json:"subtitle"`
	Category string   `json:"category"`
	Features []string `json:"features"`
}

// ServiceCategory groups services on the browse screen.
type ServiceCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Services is the fixed catalog of bookable services.
var Services = []ServiceType{
	{
		ID:       "oil-change",
		Name:     "Oil Change",
		Subtitle: "Premium Engine Oil Service & Filter Replacement",
		Category: "oil-change",
		Features: []string{"Synthetic Oil", "Oil Filter", "Fluid Check", "Engine Inspection", "Quick Service"},
	},
	{
		ID:       "car-wash",
		Name:     "Car Wash",
		Subtitle: "Professional Cleaning Service At Home",
		Category: "wash",
		Features: []string{"Pressure Wash", "Deep Vacuum", "Mat Cleaning", "Dashboard Polishing", "Tire Shine"},
	},
	{
		ID:       "interior-detailing",
		Name:     "Interior Detailing",
		Subtitle: "Complete Cabin Rejuvenation & Sanitization",
		Category: "detailing",
		Features: []string{"Deep Cleaning", "Leather Treatment", "Sanitization", "Odor Removal", "AC Vent Cleaning"},
	},
	{
		ID:       "exterior-detailing",
		Name:     "Exterior Detailing",
		Subtitle: "Unmatched Shine & Paint Protection",
		Category: "detailing",
		Features: []string{"Paint Correction", "Chrome Polishing", "Wax Coating", "Glass Treatment", "Wheel Detailing"},
	},
	{
		ID:       "periodic-service",
		Name:     "Periodic Service",
		Subtitle: "Expert Maintenance for Peak Performance",
		Category: "general",
		Features: []string{"Oil Change", "Filter Replacement", "Brake Inspection", "Fluid Top-up", "Multi-point Check"},
	},
	{
		ID:       "denting-painting",
		Name:     "Denting & Painting",
		Subtitle: "Precision Body Work & Factory Finish",
		Category: "repair",
		Features: []string{"Dent Removal", "Scratch Repair", "Full Body Paint", "Color Matching", "Clear Coat"},
	},
	{
		ID:       "suspension-fitments",
		Name:     "Suspension & Fitments",
		Subtitle: "Smooth Handling & Ride Comfort",
		Category: "repair",
		Features: []string{"Shock Absorbers", "Strut Replacement", "Alignment", "Bushing Replacement", "Spring Repair"},
	},
	{
		ID:       "clutch-body-parts",
		Name:     "Clutch & Body Parts",
		Subtitle: "Seamless Power Delivery & Component Replacement",
		Category: "repair",
		Features: []string{"Clutch Plate", "Pressure Plate", "Flywheel Service", "Body Panel Repair", "Parts Replacement"},
	},
	{
		ID:       "insurance-claims",
		Name:     "Insurance Claims",
		Subtitle: "Hassle-Free Accident Recovery",
		Category: "general",
		Features: []string{"Claim Processing", "Documentation Help", "Surveyor Coordination", "Cashless Service", "Quick Settlement"},
	},
	{
		ID:       "roadside-assistance",
		Name:     "Roadside Assistance",
		Subtitle: "Reliable Support Whenever You Need It",
		Category: "general",
		Features: []string{"24/7 Support", "Towing Service", "Battery Jump Start", "Flat Tire Help", "Fuel Delivery"},
	},
	{
		ID:       "accidental-repair",
		Name:     "Accidental Repair",
		Subtitle: "Major Collision Repair Specialists",
		Category: "repair",
		Features: []string{"Frame Straightening", "Panel Replacement", "Structural Repair", "Airbag Replacement", "Full Restoration"},
	},
	{
		ID:       "car-dealership",
		Name:     "Car Dealership",
		Subtitle: "Buy & Sell Quality Pre-Owned Vehicles",
		Category: "general",
		Features: []string{"Verified Vehicles", "Documentation Help", "Fair Pricing", "Inspection Report", "Transfer Assistance"},
	},
}

// ServiceCategories is the fixed list of browse categories.
var ServiceCategories = []ServiceCategory{
	{ID: "oil-change", Name: "Oil Change"},
	{ID: "wash", Name: "Car Wash"},
	{ID: "repair", Name: "Repairing"},
	{ID: "general", Name: "General"},
}

// GetServiceByID looks up a service in the catalog. Returns nil when absent.
func GetServiceByID(id string) *ServiceType {
	for i := range Services {
		if Services[i].ID == id {
			return &Services[i]
		}
	}
	return nil
}

// GetServicesByCategory returns every service belonging to the given category.
func GetServicesByCategory(category string) []ServiceType {
	var out []ServiceType
	for _, s := range Services {
		if s.Category == category {
			out = append(out, s)
		}
	}
	return out
}
