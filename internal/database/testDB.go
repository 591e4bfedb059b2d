package database

import (
	"context"
	"fmt"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	m "github.com/Varun532-pixel/naukri-clone/internal/model"
	"github.com/Varun532-pixel/naukri-clone/internal/utilities"
)

var testDBInstance *DBinstanceStruct
var teardown func(context.Context, ...testcontainers.TerminateOption) error

// Exported seeded accounts and jobs for tests
var (
	TestJobseeker1 m.User
	TestJobseeker2 m.User
	TestEmployer1  m.User
	TestEmployer2  m.User

	// Plain password shared by all seeded accounts
	TestSeedPassword = "SeedPass123!"

	TestJob1 m.Job
	TestJob2 m.Job
	TestJob3 m.Job
)

// GetTestDB starts a PostgreSQL test container and returns a teardown function,
// the DB instance, and any error encountered during setup.
func GetTestDB() (func(context.Context, ...testcontainers.TerminateOption) error, *DBinstanceStruct, error) {

	if testDBInstance != nil && teardown != nil {
		return teardown, testDBInstance, nil
	}

	// Database configuration
	var (
		dbName = "database"
		dbPwd  = "password"
		dbUser = "user"
	)

	dbContainer, err := postgres.Run(
		context.Background(),
		"postgres:latest",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPwd),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
	)
	if err != nil {
		return nil, nil, err
	}

	dbHost, err := dbContainer.Host(context.Background())
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	dbPort, err := dbContainer.MappedPort(context.Background(), nat.Port("5432/tcp"))
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	config := &DBConfig{
		useConstr: true,
		Constr:    fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", dbHost, dbPort.Port(), dbUser, dbPwd, dbName),
	}

	db, err := NewDBInstance(config)
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	if err := seedTestData(db); err != nil {
		_ = dbContainer.Terminate(context.Background())
		return nil, nil, err
	}

	testDBInstance = db
	teardown = dbContainer.Terminate

	return dbContainer.Terminate, db, nil
}

// seedTestData inserts sample jobseeker and employer accounts plus jobs if empty.
func seedTestData(db *DBinstanceStruct) error {
	var userCount int64
	if err := db.Model(&m.User{}).Count(&userCount).Error; err != nil {
		return err
	}

	if userCount > 0 {
		return loadTestData(db)
	}

	hashedPwd, errHash := utilities.HashPassword(TestSeedPassword)
	if errHash != nil {
		return errHash
	}

	seekers := []m.User{
		{
			Email:    "seeker1@example.com",
			Password: hashedPwd,
			Role:     m.RoleJobseeker,
			EditableProfileInfo: m.EditableProfileInfo{
				Name:     "Asha Kulkarni",
				Phone:    "9100000001",
				Location: "Pune",
				Skills:   pq.StringArray{"Go", "PostgreSQL"},
			},
		},
		{
			Email:    "seeker2@example.com",
			Password: hashedPwd,
			Role:     m.RoleJobseeker,
			EditableProfileInfo: m.EditableProfileInfo{
				Name:     "Rohan Mehta",
				Phone:    "9100000002",
				Location: "Bengaluru",
				Skills:   pq.StringArray{"React", "TypeScript"},
			},
		},
	}
	if err := db.Create(&seekers).Error; err != nil {
		return err
	}
	TestJobseeker1 = seekers[0]
	TestJobseeker2 = seekers[1]

	employers := []m.User{
		{
			Email:    "hr@technova.example.com",
			Password: hashedPwd,
			Role:     m.RoleEmployer,
			EditableCompanyInfo: m.EditableCompanyInfo{
				Name:        "TechNova",
				Website:     "https://technova.example.com",
				Description: "Innovative platform solutions",
				Logo:        "https://technova.example.com/logo.png",
				Location:    "Pune",
			},
		},
		{
			Email:    "jobs@dataforge.example.com",
			Password: hashedPwd,
			Role:     m.RoleEmployer,
			EditableCompanyInfo: m.EditableCompanyInfo{
				Name:        "DataForge",
				Website:     "https://dataforge.example.com",
				Description: "Data analytics consulting",
				Logo:        "https://dataforge.example.com/logo.png",
				Location:    "Mumbai",
			},
		},
	}
	if err := db.Create(&employers).Error; err != nil {
		return err
	}
	TestEmployer1 = employers[0]
	TestEmployer2 = employers[1]

	var jobCount int64
	if err := db.Model(&m.Job{}).Count(&jobCount).Error; err != nil {
		return err
	}
	if jobCount == 0 {
		exp1 := time.Now().AddDate(0, 1, 0)
		exp2 := time.Now().AddDate(0, 2, 0)

		jobs := []m.Job{
			{
				EmployerID: TestEmployer1.ID,
				EditableJobInfo: m.EditableJobInfo{
					Title:        "Backend Engineer",
					Description:  "Work on Go microservices and database layers.",
					Location:     "Pune",
					Type:         "Full-time",
					Requirements: pq.StringArray{"Go basics", "SQL familiarity"},
					Skills:       pq.StringArray{"Go", "PostgreSQL"},
					Salary:       m.SalaryRange{Min: 800000, Max: 1500000, Currency: "INR"},
					Experience:   m.ExperienceRange{Min: 2, Max: 5},
					ExpiresAt:    &exp1,
				},
			},
			{
				EmployerID: TestEmployer1.ID,
				EditableJobInfo: m.EditableJobInfo{
					Title:        "Frontend Developer",
					Description:  "Build the component library in React.",
					Location:     "Remote",
					Type:         "Contract",
					Requirements: pq.StringArray{"JS/TS fundamentals"},
					Skills:       pq.StringArray{"React", "TypeScript"},
					Salary:       m.SalaryRange{Min: 600000, Max: 1000000, Currency: "INR"},
					Experience:   m.ExperienceRange{Min: 1, Max: 3},
					ExpiresAt:    &exp2,
				},
			},
			{
				EmployerID: TestEmployer2.ID,
				EditableJobInfo: m.EditableJobInfo{
					Title:        "Data Analyst Intern",
					Description:  "Support data cleansing and dashboard creation.",
					Location:     "Mumbai",
					Type:         "Internship",
					Requirements: pq.StringArray{"SQL", "basic statistics"},
					Skills:       pq.StringArray{"SQL", "Python"},
					Salary:       m.SalaryRange{Min: 180000, Max: 300000, Currency: "INR"},
					Experience:   m.ExperienceRange{Min: 0, Max: 1},
				},
			},
		}

		if err := db.Create(&jobs).Error; err != nil {
			return err
		}
		TestJob1 = jobs[0]
		TestJob2 = jobs[1]
		TestJob3 = jobs[2]
	}

	return nil
}

// loadTestData populates exported variables when records already exist.
func loadTestData(db *DBinstanceStruct) error {
	var users []m.User
	if err := db.Where("email IN ?", []string{
		"seeker1@example.com", "seeker2@example.com",
		"hr@technova.example.com", "jobs@dataforge.example.com",
	}).Find(&users).Error; err != nil {
		return err
	}
	for _, u := range users {
		switch u.Email {
		case "seeker1@example.com":
			TestJobseeker1 = u
		case "seeker2@example.com":
			TestJobseeker2 = u
		case "hr@technova.example.com":
			TestEmployer1 = u
		case "jobs@dataforge.example.com":
			TestEmployer2 = u
		}
	}

	var jobs []m.Job
	if err := db.Order("id ASC").Limit(3).Find(&jobs).Error; err == nil {
		if len(jobs) > 0 {
			TestJob1 = jobs[0]
		}
		if len(jobs) > 1 {
			TestJob2 = jobs[1]
		}
		if len(jobs) > 2 {
			TestJob3 = jobs[2]
		}
	}

	return nil
}
