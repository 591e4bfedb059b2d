// Command-line tool that seeds a demo employer account with a couple of job
// postings, for trying the API against an empty database.
package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/Varun532-pixel/naukri-clone/internal/database"
	"github.com/Varun532-pixel/naukri-clone/internal/model"
	"github.com/Varun532-pixel/naukri-clone/internal/utilities"
)

// generateRandomString creates a random hex string of length n
func generateRandomString(n int) string {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		log.Fatal(err)
	}
	return hex.EncodeToString(bytes)
}

// generateUniqueEmail tries until an unused demo address is found
func generateUniqueEmail(db *gorm.DB) string {
	for {
		email := "demo_" + generateRandomString(4) + "@example.com"
		var count int64
		db.Model(&model.User{}).Where("email = ?", email).Count(&count)
		if count == 0 {
			return email
		}
	}
}

func main() {
	db, err := database.GetMainDB()
	if err != nil {
		log.Fatalf("Database failed to initialize: %v", err)
	}

	email := generateUniqueEmail(db.DB)
	password := generateRandomString(8)

	hashed, err := utilities.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	employer := model.User{
		Email:    email,
		Password: hashed,
		Role:     model.RoleEmployer,
		EditableCompanyInfo: model.EditableCompanyInfo{
			Name:        "Demo Recruiters",
			Website:     "https://demo.example.com",
			Description: "Seeded account for local development",
			Location:    "Pune",
		},
	}
	if err := db.Create(&employer).Error; err != nil {
		log.Fatalf("failed to create demo employer: %v", err)
	}

	jobs := []model.Job{
		{
			EmployerID: employer.ID,
			EditableJobInfo: model.EditableJobInfo{
				Title:        "Go Developer",
				Description:  "Build and operate REST services.",
				Location:     "Pune",
				Type:         "Full-time",
				Requirements: pq.StringArray{"2+ years backend experience"},
				Skills:       pq.StringArray{"Go", "PostgreSQL"},
				Salary:       model.SalaryRange{Min: 700000, Max: 1400000, Currency: "INR"},
				Experience:   model.ExperienceRange{Min: 2, Max: 5},
			},
		},
		{
			EmployerID: employer.ID,
			EditableJobInfo: model.EditableJobInfo{
				Title:        "QA Intern",
				Description:  "Write end-to-end test suites.",
				Location:     "Remote",
				Type:         "Internship",
				Skills:       pq.StringArray{"Python"},
				Salary:       model.SalaryRange{Min: 200000, Max: 300000, Currency: "INR"},
				Experience:   model.ExperienceRange{Min: 0, Max: 1},
			},
		},
	}
	if err := db.Create(&jobs).Error; err != nil {
		log.Fatalf("failed to create demo jobs: %v", err)
	}

	fmt.Println("Demo employer created:")
	fmt.Printf("  email:    %s\n", email)
	fmt.Printf("  password: %s\n", password)
	fmt.Printf("  jobs:     %d\n", len(jobs))
}
