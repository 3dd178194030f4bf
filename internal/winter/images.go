package winter

import (
	"time"

	"github.com/winter-telescope/winterapi/internal/models"
)

const dateLayout = "2006-01-02"

// defaultQueryWindow is how far back an image query looks when no start
// date is given.
const defaultQueryWindow = 30 * 24 * time.Hour

// checkQueryDates fills in the default window: the last 30 days up to now.
func checkQueryDates(startDate, endDate string) (string, string) {
	if startDate == "" {
		startDate = time.Now().UTC().Add(-defaultQueryWindow).Format(dateLayout)
	}
	if endDate == "" {
		endDate = time.Now().UTC().Format(dateLayout)
	}
	return startDate, endDate
}

// QueryImages runs an image query for the query's program.
func (c *Client) QueryImages(query models.ImageQuery) (Table, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	auth, err := c.getAuth()
	if err != nil {
		return nil, err
	}
	params, err := c.programParams(query.Program())
	if err != nil {
		return nil, err
	}

	res, err := c.api.Get(c.api.Endpoints.ImageQuery(), auth, []models.ImageQuery{query}, params)
	if err != nil {
		return nil, err
	}
	return decodeTable(res.Body)
}

// QueryImagesByProgram returns every image a program took in the window.
func (c *Client) QueryImagesByProgram(programName, startDate, endDate string, kind models.ImageKind) (Table, error) {
	startDate, endDate = checkQueryDates(startDate, endDate)
	c.log.Infof("Querying images for %s between %s and %s of type '%s'",
		programName, startDate, endDate, kind)

	return c.QueryImages(models.ProgramImageQuery{
		ImageQueryBase: models.ImageQueryBase{
			ProgramName: programName,
			StartDate:   startDate,
			EndDate:     endDate,
			Kind:        kind,
		},
	})
}

// QueryImagesByTarget filters images by the target name used at submission.
func (c *Client) QueryImagesByTarget(programName, targetName, startDate, endDate string, kind models.ImageKind) (Table, error) {
	startDate, endDate = checkQueryDates(startDate, endDate)
	c.log.Infof("Querying images for %s between %s and %s of type '%s', with name %s",
		programName, startDate, endDate, kind, targetName)

	return c.QueryImages(models.TargetImageQuery{
		ImageQueryBase: models.ImageQueryBase{
			ProgramName: programName,
			StartDate:   startDate,
			EndDate:     endDate,
			Kind:        kind,
		},
		TargetName: targetName,
	})
}

// QueryImagesByCone returns images within radiusDeg of a sky position.
func (c *Client) QueryImagesByCone(programName string, raDeg, decDeg, radiusDeg float64,
	startDate, endDate string, kind models.ImageKind) (Table, error) {
	startDate, endDate = checkQueryDates(startDate, endDate)
	c.log.Infof("Querying images for %s between %s and %s of type '%s', "+
		"with a radius of %g degrees around %g, %g",
		programName, startDate, endDate, kind, radiusDeg, raDeg, decDeg)

	return c.QueryImages(models.ConeImageQuery{
		ImageQueryBase: models.ImageQueryBase{
			ProgramName: programName,
			StartDate:   startDate,
			EndDate:     endDate,
			Kind:        kind,
		},
		Ra:        raDeg,
		Dec:       decDeg,
		RadiusDeg: radiusDeg,
	})
}

// QueryImagesByRectangle returns images within an RA/Dec box.
func (c *Client) QueryImagesByRectangle(programName string, raMin, raMax, decMin, decMax float64,
	startDate, endDate string, kind models.ImageKind) (Table, error) {
	startDate, endDate = checkQueryDates(startDate, endDate)
	c.log.Infof("Querying images for %s between %s and %s of type '%s', "+
		"with RA between %g and %g and Dec between %g and %g",
		programName, startDate, endDate, kind, raMin, raMax, decMin, decMax)

	return c.QueryImages(models.RectangleImageQuery{
		ImageQueryBase: models.ImageQueryBase{
			ProgramName: programName,
			StartDate:   startDate,
			EndDate:     endDate,
			Kind:        kind,
		},
		RaMin:  raMin,
		RaMax:  raMax,
		DecMin: decMin,
		DecMax: decMax,
	})
}

// DownloadImageList downloads the named images as a zip archive into
// outputDir and returns the path of the archive.
func (c *Client) DownloadImageList(programName string, paths []string, kind models.ImageKind, outputDir string) (string, error) {
	auth, err := c.getAuth()
	if err != nil {
		return "", err
	}
	params, err := c.programParams(programName)
	if err != nil {
		return "", err
	}
	params.Set("kind", string(kind))

	imagePaths := make([]models.ImagePath, 0, len(paths))
	for _, path := range paths {
		imagePaths = append(imagePaths, models.ImagePath{Path: path})
	}

	outputPath, err := c.api.GetStream(c.api.Endpoints.DownloadList(), auth, imagePaths, params, outputDir)
	if err != nil {
		return "", err
	}

	c.log.Infof("Downloaded file to %s", outputPath)
	return outputPath, nil
}
