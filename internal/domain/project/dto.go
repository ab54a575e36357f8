package project

import (
	"time"

	"gorm.io/datatypes"
)

type CreateProjectInput struct {
	Name                 string         `json:"name" binding:"required"`
	Description          string         `json:"description"`
	Website              string         `json:"website"`
	PitchDeckURL         string         `json:"pitch_deck_url"`
	Blockchain           string         `json:"blockchain"`
	OtherBlockchain      string         `json:"other_blockchain"`
	Features             datatypes.JSON `json:"features"`
	TechStack            string         `json:"tech_stack"`
	Security             string         `json:"security"`
	TGEDate              *time.Time     `json:"tge_date"`
	ListingExchanges     string         `json:"listing_exchanges"`
	MarketMaker          string         `json:"market_maker"`
	Tokenomics           string         `json:"tokenomics"`
	PreviousFunding      datatypes.JSON `json:"previous_funding"`
	FundingTarget        string         `json:"funding_target"`
	InvestmentTypes      datatypes.JSON `json:"investment_types"`
	InterestedVCs        string         `json:"interested_vcs"`
	KeyMetrics           string         `json:"key_metrics"`
	RequiredServices     datatypes.JSON `json:"required_services"`
	ServiceDetails       string         `json:"service_details"`
	AdditionalServices   string         `json:"additional_services"`
	CompanyStructure     string         `json:"company_structure"`
	RegulatoryCompliance datatypes.JSON `json:"regulatory_compliance"`
	LegalAdvisor         string         `json:"legal_advisor"`
	ComplianceStrategy   string         `json:"compliance_strategy"`
	RiskFactors          string         `json:"risk_factors"`
}

// UpdateProjectInput carries the patchable subset. Nil means "leave unchanged".
type UpdateProjectInput struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	Website      *string `json:"website"`
	PitchDeckURL *string `json:"pitch_deck_url"`
	Status       *string `json:"status"`
}
