package attendance

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/hrms-lite/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestMarkAttendanceRequest_Validate(t *testing.T) {
	cases := []struct {
		name   string
		req    MarkAttendanceRequest
		fields []string
	}{
		{"valid present", MarkAttendanceRequest{EmployeeID: "E1", Date: "2024-01-01", Status: StatusPresent}, nil},
		{"valid absent", MarkAttendanceRequest{EmployeeID: "E1", Date: "2024-02-29", Status: StatusAbsent}, nil},
		{"lowercase status", MarkAttendanceRequest{EmployeeID: "E1", Date: "2024-01-01", Status: "present"}, []string{"status"}},
		{"unknown status", MarkAttendanceRequest{EmployeeID: "E1", Date: "2024-01-01", Status: "Late"}, []string{"status"}},
		{"impossible date", MarkAttendanceRequest{EmployeeID: "E1", Date: "2023-02-30", Status: StatusPresent}, []string{"date"}},
		{"bad date shape", MarkAttendanceRequest{EmployeeID: "E1", Date: "01/01/2024", Status: StatusPresent}, []string{"date"}},
		{"everything missing", MarkAttendanceRequest{}, []string{"employee_id", "date", "status"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			if len(tc.fields) == 0 {
				assert.NoError(t, err)
				return
			}

			var errs validator.ValidationErrors
			require.ErrorAs(t, err, &errs)
			got := errs.ToMap()
			assert.Len(t, got, len(tc.fields))
			for _, f := range tc.fields {
				assert.Contains(t, got, f)
			}
		})
	}
}

func TestDateRangeFilter_Validate(t *testing.T) {
	t.Run("empty strings become nil", func(t *testing.T) {
		f := DateRangeFilter{StartDate: strPtr(""), EndDate: strPtr("")}
		require.NoError(t, f.Validate())
		assert.Nil(t, f.StartDate)
		assert.Nil(t, f.EndDate)
	})

	t.Run("inverted range is still valid input", func(t *testing.T) {
		f := DateRangeFilter{StartDate: strPtr("2024-02-01"), EndDate: strPtr("2024-01-01")}
		assert.NoError(t, f.Validate())
	})

	t.Run("bad bounds", func(t *testing.T) {
		f := DateRangeFilter{StartDate: strPtr("2024-1-1"), EndDate: strPtr("2024-13-01")}
		var errs validator.ValidationErrors
		require.ErrorAs(t, f.Validate(), &errs)
		assert.Equal(t, map[string]string{
			"start_date": "start_date must be in YYYY-MM-DD format",
			"end_date":   "end_date must be in YYYY-MM-DD format",
		}, errs.ToMap())
	})
}

func TestAttendanceRate(t *testing.T) {
	assert.True(t, AttendanceRate(StatusCounts{}).IsZero())
	assert.Equal(t, "100", AttendanceRate(StatusCounts{Present: 4}).String())
	assert.Equal(t, "66.67", AttendanceRate(StatusCounts{Present: 2, Absent: 1}).String())
	assert.Equal(t, "0", AttendanceRate(StatusCounts{Absent: 3}).String())
}

func TestToResponseWithEmployee(t *testing.T) {
	markedAt := time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC)
	resp := ToResponseWithEmployee(AttendanceWithEmployee{
		Attendance:   Attendance{ID: 1, EmployeeID: "E1", Date: "2024-01-01", Status: StatusPresent, MarkedAt: markedAt},
		EmployeeName: "Ada",
	})

	assert.Equal(t, "Ada", resp.EmployeeName)
	assert.Equal(t, "E1", resp.EmployeeID)
	assert.Equal(t, "2024-01-01T09:30:00Z", resp.MarkedAt)
}
