package model

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestGenerationOf(t *testing.T) {
	tests := []struct {
		name      string
		birthDate time.Time
		want      Generation
		wantErr   bool
	}{
		{"deep past is boomer", date(1950, 6, 15), GenerationBabyBoomer, false},
		{"last boomer day", date(1964, 12, 31), GenerationBabyBoomer, false},
		{"first gen x day", date(1965, 1, 1), GenerationGenX, false},
		{"last gen x day", date(1980, 12, 31), GenerationGenX, false},
		{"first millennial day", date(1981, 1, 1), GenerationMillennial, false},
		{"last millennial day", date(1996, 12, 31), GenerationMillennial, false},
		{"first gen z day", date(1997, 1, 1), GenerationGenZ, false},
		{"last gen z day", date(2015, 12, 31), GenerationGenZ, false},
		{"2016 is out of range", date(2016, 1, 1), "", true},
		{"future is out of range", date(2030, 5, 1), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GenerationOf(tt.birthDate)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("GenerationOf(%v) = %q, expected error", tt.birthDate, got)
				}
				var verr *ValidationError
				if !errors.As(err, &verr) {
					t.Errorf("expected *ValidationError, got %T", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("GenerationOf(%v) returned error: %v", tt.birthDate, err)
			}
			if got != tt.want {
				t.Errorf("GenerationOf(%v) = %q, expected %q", tt.birthDate, got, tt.want)
			}
		})
	}
}

func TestNewEmployeeDerivesGeneration(t *testing.T) {
	jobID := NewID()
	deptID := NewID()

	emp, err := NewEmployee(jobID, &deptID, nil, "Ada", "Lovelace", date(1990, 3, 12), GenderFemale, EthnicityWhite)
	if err != nil {
		t.Fatalf("NewEmployee returned error: %v", err)
	}
	if emp.Generation != GenerationMillennial {
		t.Errorf("generation = %q, expected %q", emp.Generation, GenerationMillennial)
	}
	if emp.ID == uuid.Nil {
		t.Error("employee id was not assigned")
	}
	if emp.EducationLevel != nil || emp.EducationField != nil {
		t.Error("education fields should start nil")
	}
}

func TestNewEmployeeRejectsBadInput(t *testing.T) {
	deptID := NewID()

	if _, err := NewEmployee(uuid.Nil, &deptID, nil, "A", "B", date(1990, 1, 1), GenderMale, EthnicityAsian); err == nil {
		t.Error("expected error for missing job id")
	}
	if _, err := NewEmployee(NewID(), &deptID, nil, "A", "B", date(1990, 1, 1), Gender("Unknown"), EthnicityAsian); err == nil {
		t.Error("expected error for unrecognized gender")
	}
	if _, err := NewEmployee(NewID(), &deptID, nil, "A", "B", date(2020, 1, 1), GenderMale, EthnicityAsian); err == nil {
		t.Error("expected error for out-of-range birth date")
	}
}

func TestSetEducation(t *testing.T) {
	deptID := NewID()
	emp, err := NewEmployee(NewID(), &deptID, nil, "A", "B", date(1985, 7, 4), GenderNonBinary, EthnicityOther)
	if err != nil {
		t.Fatalf("NewEmployee returned error: %v", err)
	}

	if err := emp.SetEducation(EducationLevel("Bootcamp"), FieldComputerScience); err == nil {
		t.Error("expected error for unrecognized education level")
	}

	if err := emp.SetEducation(EducationMasters, FieldComputerScience); err != nil {
		t.Fatalf("SetEducation returned error: %v", err)
	}
	if emp.EducationLevel == nil || *emp.EducationLevel != EducationMasters {
		t.Errorf("education level not set, got %v", emp.EducationLevel)
	}
	if emp.EducationField == nil || *emp.EducationField != FieldComputerScience {
		t.Errorf("education field not set, got %v", emp.EducationField)
	}
}
