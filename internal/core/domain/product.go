package domain

import "time"

type ProductCategory string

const (
	CategoryFood        ProductCategory = "food"
	CategoryClothing    ProductCategory = "clothing"
	CategoryElectronics ProductCategory = "electronics"
	CategoryHome        ProductCategory = "home"
	CategoryBeauty      ProductCategory = "beauty"
	CategoryAutomotive  ProductCategory = "automotive"
	CategoryIndustrial  ProductCategory = "industrial"
	CategoryOther       ProductCategory = "other"
)

func (c ProductCategory) Valid() bool {
	switch c {
	case CategoryFood, CategoryClothing, CategoryElectronics, CategoryHome,
		CategoryBeauty, CategoryAutomotive, CategoryIndustrial, CategoryOther:
		return true
	}
	return false
}

type TransportationMode string

const (
	TransportAir  TransportationMode = "air"
	TransportSea  TransportationMode = "sea"
	TransportLand TransportationMode = "land"
	TransportRail TransportationMode = "rail"
)

func (m TransportationMode) Valid() bool {
	switch m {
	case TransportAir, TransportSea, TransportLand, TransportRail:
		return true
	}
	return false
}

type SustainabilityMetrics struct {
	CarbonFootprint      float64  `json:"carbonFootprint" bson:"carbon_footprint"`
	RecyclabilityScore   float64  `json:"recyclabilityScore" bson:"recyclability_score"`
	SustainabilityRating float64  `json:"sustainabilityRating" bson:"sustainability_rating"`
	Certifications       []string `json:"certifications" bson:"certifications"`
}

type SupplyChain struct {
	SupplierID         string             `json:"supplierId,omitempty" bson:"supplier_id,omitempty"`
	OriginCountry      string             `json:"originCountry" bson:"origin_country"`
	ManufacturingDate  *time.Time         `json:"manufacturingDate,omitempty" bson:"manufacturing_date,omitempty"`
	TransportationMode TransportationMode `json:"transportationMode" bson:"transportation_mode"`
	Intermediaries     []string           `json:"intermediaries,omitempty" bson:"intermediaries,omitempty"`
}

type ProductESGData struct {
	WaterUsage                float64 `json:"waterUsage" bson:"water_usage"`
	EnergyConsumption         float64 `json:"energyConsumption" bson:"energy_consumption"`
	RenewableEnergyPercentage float64 `json:"renewableEnergyPercentage" bson:"renewable_energy_percentage"`
	FairTrade                 bool    `json:"fairTrade" bson:"fair_trade"`
	EthicalSourcing           bool    `json:"ethicalSourcing" bson:"ethical_sourcing"`
}

type Price struct {
	Amount   float64 `json:"amount" bson:"amount"`
	Currency string  `json:"currency" bson:"currency"`
}

type Availability struct {
	InStock  bool `json:"inStock" bson:"in_stock"`
	Quantity int  `json:"quantity" bson:"quantity"`
}

type Product struct {
	ID                    string                `json:"id" bson:"_id"`
	Name                  string                `json:"name" bson:"name"`
	Description           string                `json:"description" bson:"description"`
	Category              ProductCategory       `json:"category" bson:"category"`
	Brand                 string                `json:"brand" bson:"brand"`
	Barcode               string                `json:"barcode,omitempty" bson:"barcode,omitempty"`
	QRCode                string                `json:"qrCode,omitempty" bson:"qr_code,omitempty"`
	Images                []string              `json:"images,omitempty" bson:"images,omitempty"`
	SustainabilityMetrics SustainabilityMetrics `json:"sustainabilityMetrics" bson:"sustainability_metrics"`
	SupplyChain           SupplyChain           `json:"supplyChain" bson:"supply_chain"`
	ESGData               ProductESGData        `json:"esgData" bson:"esg_data"`
	Price                 Price                 `json:"price" bson:"price"`
	Availability          Availability          `json:"availability" bson:"availability"`
	CreatedBy             string                `json:"createdBy,omitempty" bson:"created_by,omitempty"`
	IsActive              bool                  `json:"isActive" bson:"is_active"`
	CreatedAt             time.Time             `json:"createdAt" bson:"created_at"`
	UpdatedAt             time.Time             `json:"updatedAt" bson:"updated_at"`
}
