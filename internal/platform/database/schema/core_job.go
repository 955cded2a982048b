package schema

// CoreJobTable represents the 'core.job' table
type CoreJobTable struct {
	Table           string
	ID              string
	Title           string
	Tags            string
	JobRole         string
	MinSalary       string
	MaxSalary       string
	SalaryType      string
	EducationLevel  string
	ExperienceLevel string
	JobType         string
	JobLevel        string
	ExpirationDate  string
	Country         string
	City            string
	FullyRemote     string
	Description     string
	CreatedBy       string
	CreatedAt       string
	UpdatedAt       string
	DeletedAt       string
}

// CoreJob is the schema definition for core.job
var CoreJob = CoreJobTable{
	Table:           "core.job",
	ID:              "id",
	Title:           "title",
	Tags:            "tags",
	JobRole:         "jobrole",
	MinSalary:       "minsalary",
	MaxSalary:       "maxsalary",
	SalaryType:      "salarytype",
	EducationLevel:  "educationlevel",
	ExperienceLevel: "experiencelevel",
	JobType:         "jobtype",
	JobLevel:        "joblevel",
	ExpirationDate:  "expirationdate",
	Country:         "country",
	City:            "city",
	FullyRemote:     "fullyremote",
	Description:     "description",
	CreatedBy:       "createdby",
	CreatedAt:       "createdat",
	UpdatedAt:       "updatedat",
	DeletedAt:       "deletedat",
}

func (t CoreJobTable) Columns() []string {
	return []string{
		t.ID, t.Title, t.Tags, t.JobRole, t.MinSalary, t.MaxSalary, t.SalaryType,
		t.EducationLevel, t.ExperienceLevel, t.JobType, t.JobLevel, t.ExpirationDate,
		t.Country, t.City, t.FullyRemote, t.Description, t.CreatedBy,
		t.CreatedAt, t.UpdatedAt, t.DeletedAt,
	}
}
