package models

import "time"

// Demo credential accepted by the mock login. The password is hashed before
// it is stored; the plain value lives here because this is a demo console.
const (
	SeedAdminUsername = "admin"
	SeedAdminPassword = "admin123"
)

func seedActor() *string {
	actor := SeedAdminUsername
	return &actor
}

// SeedDocumentTypes returns the fixed initial document type dataset. Both
// store drivers seed from this list on first use.
func SeedDocumentTypes() []DocumentType {
	return []DocumentType{
		{
			Name:        "Prototype",
			Description: "A preliminary model or sample of a product built to test and validate concepts, designs, and functionalities before final production.",
			IsActive:    true,
			CreatedAt:   time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
			CreatedBy:   seedActor(),
			UpdatedBy:   seedActor(),
		},
		{
			Name:        "Lab Report",
			Description: "A detailed document that presents the findings, methodology, analysis, and conclusions of scientific experiments or laboratory investigations.",
			IsActive:    true,
			CreatedAt:   time.Date(2024, 2, 10, 14, 20, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 2, 10, 14, 20, 0, 0, time.UTC),
			CreatedBy:   seedActor(),
			UpdatedBy:   seedActor(),
		},
		{
			Name:        "Invalid Status Report",
			Description: "A report documenting items, records, or transactions that have been identified as invalid, incorrect, or not meeting the required validation criteria.",
			IsActive:    false,
			CreatedAt:   time.Date(2024, 3, 5, 9, 15, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 3, 5, 9, 15, 0, 0, time.UTC),
			CreatedBy:   seedActor(),
			UpdatedBy:   seedActor(),
		},
	}
}

// SeedProducts returns the fixed initial product dataset, one record per
// product type.
func SeedProducts() []Product {
	return []Product{
		{
			ProductName: "Atorvastatin 20mg Tablet",
			ProductType: ProductTypeSmallMolecule,
			ProductCode: "ATV-20",
			Description: "Oral statin tablet for lowering LDL cholesterol.",
			IsActive:    true,
			CreatedAt:   time.Date(2024, 1, 20, 8, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 1, 20, 8, 0, 0, 0, time.UTC),
			CreatedBy:   SeedAdminUsername,
			UpdatedBy:   SeedAdminUsername,
		},
		{
			ProductName: "Adalimumab Injection",
			ProductType: ProductTypeBiologic,
			ProductCode: "ADL-40",
			Description: "Monoclonal antibody injection for autoimmune conditions.",
			IsActive:    true,
			CreatedAt:   time.Date(2024, 2, 14, 11, 45, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 2, 14, 11, 45, 0, 0, time.UTC),
			CreatedBy:   SeedAdminUsername,
			UpdatedBy:   SeedAdminUsername,
		},
		{
			ProductName: "Insulin Delivery Pen",
			ProductType: ProductTypeDevice,
			ProductCode: "PEN-01",
			Description: "Reusable pen device for subcutaneous insulin delivery.",
			IsActive:    true,
			CreatedAt:   time.Date(2024, 3, 2, 16, 30, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 3, 2, 16, 30, 0, 0, time.UTC),
			CreatedBy:   SeedAdminUsername,
			UpdatedBy:   SeedAdminUsername,
		},
		{
			ProductName: "Albuterol Metered-Dose Inhaler",
			ProductType: ProductTypeCombination,
			ProductCode: "ALB-MDI",
			Description: "Drug-device combination inhaler for acute bronchospasm.",
			IsActive:    false,
			CreatedAt:   time.Date(2024, 3, 18, 13, 10, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 3, 18, 13, 10, 0, 0, time.UTC),
			CreatedBy:   SeedAdminUsername,
			UpdatedBy:   SeedAdminUsername,
		},
	}
}
