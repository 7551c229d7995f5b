package attendance

import (
	"testing"
	"time"

	"github.com/hrms-lite/hrms-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkAttendanceRequest_Validate_Success(t *testing.T) {
	req := MarkAttendanceRequest{
		EmployeeID: 1,
		Date:       "2024-01-15",
		Status:     "Present",
	}

	require.NoError(t, req.Validate())
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), req.ParsedDate)
	assert.Equal(t, StatusPresent, req.ParsedStatus)
}

func TestMarkAttendanceRequest_Validate_FutureDate(t *testing.T) {
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	req := MarkAttendanceRequest{
		EmployeeID: 1,
		Date:       tomorrow,
		Status:     "Present",
	}

	err := req.Validate()
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "date")
}

func TestMarkAttendanceRequest_Validate_Today(t *testing.T) {
	// The guard compares calendar days in the server's zone, so the
	// local date is valid even when it differs from the UTC date.
	req := MarkAttendanceRequest{
		EmployeeID: 1,
		Date:       time.Now().Format("2006-01-02"),
		Status:     "Absent",
	}

	assert.NoError(t, req.Validate())
}

func TestMarkAttendanceRequest_Validate_BadInput(t *testing.T) {
	cases := []struct {
		name  string
		req   MarkAttendanceRequest
		field string
	}{
		{
			name:  "zero employee id",
			req:   MarkAttendanceRequest{EmployeeID: 0, Date: "2024-01-15", Status: "Present"},
			field: "employee_id",
		},
		{
			name:  "malformed date",
			req:   MarkAttendanceRequest{EmployeeID: 1, Date: "15/01/2024", Status: "Present"},
			field: "date",
		},
		{
			name:  "unknown status",
			req:   MarkAttendanceRequest{EmployeeID: 1, Date: "2024-01-15", Status: "Late"},
			field: "status",
		},
		{
			name:  "lowercase status rejected",
			req:   MarkAttendanceRequest{EmployeeID: 1, Date: "2024-01-15", Status: "present"},
			field: "status",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			require.Error(t, err)

			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs.ToMap(), tc.field)
		})
	}
}

func TestUpdateAttendanceRequest_Validate(t *testing.T) {
	valid := UpdateAttendanceRequest{Status: "Absent"}
	assert.NoError(t, valid.Validate())

	invalid := UpdateAttendanceRequest{Status: "Sick"}
	assert.Error(t, invalid.Validate())
}

func TestStatus_IsValid(t *testing.T) {
	assert.True(t, StatusPresent.IsValid())
	assert.True(t, StatusAbsent.IsValid())
	assert.False(t, Status("").IsValid())
	assert.False(t, Status("Holiday").IsValid())
}
