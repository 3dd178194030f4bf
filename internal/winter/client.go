package winter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Masterminds/semver/v3"

	"github.com/winter-telescope/winterapi/internal/api"
	"github.com/winter-telescope/winterapi/internal/configs"
	werrors "github.com/winter-telescope/winterapi/internal/errors"
	"github.com/winter-telescope/winterapi/internal/fidelius"
	logger "github.com/winter-telescope/winterapi/internal/logging"
	"github.com/winter-telescope/winterapi/internal/models"
	"github.com/winter-telescope/winterapi/internal/schedule"
)

// Version is the client version reported against the server's minimum.
const Version = "1.2.0"

// Table is a generic tabular API body: the schedule summaries and image
// listings the server returns as lists of records.
type Table []map[string]any

// Client is one session against the ToO service. It owns a Fidelius keeper
// for credentials and caches the resolved auth pair after the first lookup,
// so repeated calls do not re-touch the encrypted store.
type Client struct {
	Fidelius *fidelius.Fidelius

	api  *api.Client
	log  logger.Logger
	auth *api.Auth
}

// NewClient builds a session against the local or remote server, loading
// credentials from the default keeper settings and system keyring.
func NewClient(local bool, log logger.Logger) (*Client, error) {
	store := fidelius.NewStore(configs.WinterSettings, fidelius.SystemKeyring{})
	keeper, err := fidelius.New(store)
	if err != nil {
		return nil, err
	}

	c := &Client{
		Fidelius: keeper,
		api:      api.NewClient(local),
		log:      log,
	}

	if !c.Ping() {
		log.Warnf("Could not successfully ping server")
	}
	c.CheckVersion()

	return c, nil
}

// NewClientWith wires an explicit keeper and API client; used by tests.
func NewClientWith(keeper *fidelius.Fidelius, apiClient *api.Client, log logger.Logger) *Client {
	return &Client{Fidelius: keeper, api: apiClient, log: log}
}

// Ping reports whether the server is reachable.
func (c *Client) Ping() bool {
	res, err := http.Get(c.api.Endpoints.Ping())
	if err != nil {
		return false
	}
	defer res.Body.Close()
	return res.StatusCode == http.StatusOK
}

// CheckVersion warns when the server requires a newer client than this one.
// A failed check is logged, never fatal.
func (c *Client) CheckVersion() {
	res, err := c.api.Get(c.api.Endpoints.Version(), api.Auth{}, nil, nil)
	if err != nil {
		c.log.Warnf("Could not check minimum client version for server")
		return
	}

	var minimum string
	if err := json.Unmarshal(res.Body, &minimum); err != nil {
		c.log.Warnf("Could not parse server minimum version")
		return
	}

	serverVersion, err := semver.NewVersion(minimum)
	if err != nil {
		c.log.Warnf("Server sent unparseable minimum version %q", minimum)
		return
	}
	localVersion := semver.MustParse(Version)

	c.log.Infof("Server requires minimum client version: %s", serverVersion)
	c.log.Infof("Local client version: %s", localVersion)

	if serverVersion.GreaterThan(localVersion) {
		c.log.Warnf("Local client version (%s) is out of date! "+
			"Server requires a minimum of %s. Please update.", localVersion, serverVersion)
	}
}

// getAuth returns the cached basic-auth pair, resolving it from the keeper
// on first use. The cache lives for the process; it is intentionally not
// reactive to concurrent external credential changes mid-session.
func (c *Client) getAuth() (api.Auth, error) {
	if c.auth != nil {
		return *c.auth, nil
	}

	user, err := c.Fidelius.GetUser()
	if err != nil {
		return api.Auth{}, err
	}
	password, err := c.Fidelius.GetPassword()
	if err != nil {
		return api.Auth{}, err
	}

	c.auth = &api.Auth{User: user, Password: password}
	return *c.auth, nil
}

// CheckUserDetails validates a user/password pair against the server.
func (c *Client) CheckUserDetails(user, password string) error {
	_, err := c.api.Get(c.api.Endpoints.User(), api.Auth{User: user, Password: password}, nil, nil)
	return err
}

// AddUserDetails validates the pair with the server and stores it.
func (c *Client) AddUserDetails(user, password string, overwrite bool) error {
	if err := c.CheckUserDetails(user, password); err != nil {
		return err
	}
	return c.Fidelius.SetUser(user, password, overwrite)
}

// GetUser returns the stored user name.
func (c *Client) GetUser() (string, error) {
	return c.Fidelius.GetUser()
}

// CheckProgramDetails validates a program name and key against the server
// and returns the server's record for it.
func (c *Client) CheckProgramDetails(programName, programAPIKey string) (fidelius.Program, error) {
	auth, err := c.getAuth()
	if err != nil {
		return fidelius.Program{}, err
	}

	params := url.Values{}
	params.Set("program_name", programName)
	params.Set("program_api_key", programAPIKey)

	res, err := c.api.Get(c.api.Endpoints.Program(), auth, nil, params)
	if err != nil {
		return fidelius.Program{}, err
	}

	var fields map[string]any
	if err := json.Unmarshal(res.Body, &fields); err != nil {
		return fidelius.Program{}, fmt.Errorf("failed to parse program details: %w", err)
	}

	program, err := fidelius.ProgramFromWire(fields)
	if err != nil {
		return fidelius.Program{}, err
	}
	program.ProgKey = programAPIKey
	return program, nil
}

// AddProgram validates a program with the server and stores its record.
func (c *Client) AddProgram(programName, programAPIKey string, overwrite bool) error {
	program, err := c.CheckProgramDetails(programName, programAPIKey)
	if err != nil {
		return err
	}
	return c.Fidelius.AddProgram(program, overwrite)
}

// GetPrograms returns the locally known program names, sorted.
func (c *Client) GetPrograms() []string {
	return c.Fidelius.GetPrograms()
}

// GetProgramDetails returns the stored record for one program.
func (c *Client) GetProgramDetails(programName string) (fidelius.Program, error) {
	return c.Fidelius.GetProgramDetails(programName)
}

// DeleteProgram removes a stored program.
func (c *Client) DeleteProgram(programName string) error {
	return c.Fidelius.DeleteProgram(programName)
}

// ClearCache wipes the stored credentials and encryption key.
func (c *Client) ClearCache() error {
	return c.Fidelius.ClearCache()
}

func decodeTable(body json.RawMessage) (Table, error) {
	var table Table
	if err := json.Unmarshal(body, &table); err != nil {
		return nil, fmt.Errorf("failed to parse tabular response: %w", err)
	}
	return table, nil
}

// programParams builds the auth query parameters every program-scoped
// endpoint expects.
func (c *Client) programParams(programName string) (url.Values, error) {
	program, err := c.GetProgramDetails(programName)
	if err != nil {
		return nil, err
	}
	params := url.Values{}
	params.Set("program_name", program.Progname)
	params.Set("program_api_key", program.ProgKey)
	return params, nil
}

func (c *Client) submitToo(endpoint, programName string, toos []models.ToO, submitTrigger bool) (Table, error) {
	for _, too := range toos {
		if err := too.Validate(); err != nil {
			return nil, err
		}
	}

	auth, err := c.getAuth()
	if err != nil {
		return nil, err
	}
	params, err := c.programParams(programName)
	if err != nil {
		return nil, err
	}
	params.Set("submit_trigger", fmt.Sprintf("%t", submitTrigger))

	res, err := c.api.Post(endpoint, auth, toos, params)
	if err != nil {
		return nil, err
	}

	c.log.Infof("%s", res.Msg)
	return decodeTable(res.Body)
}

// SubmitTooWinter submits WINTER ToO requests. With submitTrigger false the
// server validates and returns the derived schedule without queueing it.
func (c *Client) SubmitTooWinter(programName string, toos []models.ToO, submitTrigger bool) (Table, error) {
	for _, too := range toos {
		if too.Instrument() != models.InstrumentWinter {
			return nil, fmt.Errorf("request for %s is not a WINTER ToO: %w",
				too.Base().TargetName, werrors.ErrInvalidToO)
		}
	}
	return c.submitToo(c.api.Endpoints.WinterToO(), programName, toos, submitTrigger)
}

// SubmitTooSummer submits SUMMER ToO requests.
func (c *Client) SubmitTooSummer(programName string, toos []models.ToO, submitTrigger bool) (Table, error) {
	for _, too := range toos {
		if too.Instrument() != models.InstrumentSummer {
			return nil, fmt.Errorf("request for %s is not a SUMMER ToO: %w",
				too.Base().TargetName, werrors.ErrInvalidToO)
		}
	}
	return c.submitToo(c.api.Endpoints.SummerToO(), programName, toos, submitTrigger)
}

// BuildScheduleLocally expands ToO requests into a provisional schedule
// without contacting the server.
func (c *Client) BuildScheduleLocally(programName string, toos []models.ToO) (schedule.Schedule, error) {
	program, err := c.GetProgramDetails(programName)
	if err != nil {
		return schedule.Schedule{}, err
	}
	return schedule.Build(toos, program)
}

// GetObservatoryQueue returns the summary of queued ToO schedules for a
// program.
func (c *Client) GetObservatoryQueue(programName string) (Table, error) {
	auth, err := c.getAuth()
	if err != nil {
		return nil, err
	}
	params, err := c.programParams(programName)
	if err != nil {
		return nil, err
	}

	res, err := c.api.Get(c.api.Endpoints.ScheduleSummary(), auth, nil, params)
	if err != nil {
		return nil, err
	}
	return decodeTable(res.Body)
}

// GetTooDetails returns the full contents of one queued ToO schedule.
func (c *Client) GetTooDetails(programName, tooScheduleName string) (Table, error) {
	auth, err := c.getAuth()
	if err != nil {
		return nil, err
	}
	params, err := c.programParams(programName)
	if err != nil {
		return nil, err
	}
	params.Set("schedule_name", tooScheduleName)

	res, err := c.api.Get(c.api.Endpoints.ScheduleDetails(), auth, nil, params)
	if err != nil {
		return nil, err
	}
	return decodeTable(res.Body)
}

// DeleteTooRequest removes one queued ToO schedule from the observatory
// queue.
func (c *Client) DeleteTooRequest(programName, tooScheduleName string) error {
	auth, err := c.getAuth()
	if err != nil {
		return err
	}
	params, err := c.programParams(programName)
	if err != nil {
		return err
	}
	params.Set("schedule_name", tooScheduleName)

	_, err = c.api.Delete(c.api.Endpoints.ScheduleDelete(), auth, params)
	return err
}
