package api

// Server base URLs. The local address is the development server started by
// the observatory's validation stack.
const (
	LocalBaseURL  = "http://127.0.0.1:7000"
	RemoteBaseURL = "http://winter.caltech.edu:82"
)

// Endpoints is the URL table for one server.
type Endpoints struct {
	BaseURL string
}

// NewEndpoints returns the endpoint table for the local or remote server.
func NewEndpoints(local bool) Endpoints {
	if local {
		return Endpoints{BaseURL: LocalBaseURL}
	}
	return Endpoints{BaseURL: RemoteBaseURL}
}

func (e Endpoints) Ping() string            { return e.BaseURL + "/ping" }
func (e Endpoints) Version() string         { return e.BaseURL + "/validation/version" }
func (e Endpoints) User() string            { return e.BaseURL + "/validation/user" }
func (e Endpoints) Program() string         { return e.BaseURL + "/validation/program" }
func (e Endpoints) WinterToO() string       { return e.BaseURL + "/too/winter" }
func (e Endpoints) SummerToO() string       { return e.BaseURL + "/too/summer" }
func (e Endpoints) ScheduleSummary() string { return e.BaseURL + "/too/summary" }
func (e Endpoints) ScheduleDetails() string { return e.BaseURL + "/too/details" }
func (e Endpoints) ScheduleDelete() string  { return e.BaseURL + "/too/delete" }
func (e Endpoints) ImageQuery() string      { return e.BaseURL + "/images/query" }
func (e Endpoints) DownloadList() string    { return e.BaseURL + "/images/download_list" }
