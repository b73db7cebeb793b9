package models

// AnalyticsData aggregates placement figures for the admin dashboard
type AnalyticsData struct {
	TotalJobs            int            `json:"totalJobs"`
	ActiveJobs           int            `json:"activeJobs"`
	TotalApplications    int            `json:"totalApplications"`
	SelectionsByDept     map[string]int `json:"selectionsByDept"`
	ApplicationsByStatus map[string]int `json:"applicationsByStatus"`
	JobsByCompany        map[string]int `json:"jobsByCompany"`
	TotalEvents          int            `json:"totalEvents"`
	ActiveUsers          int            `json:"activeUsers"`
}
