package models

import (
	"fmt"

	werrors "github.com/winter-telescope/winterapi/internal/errors"
)

// ImageKind selects which image products a query returns.
type ImageKind string

const (
	ImageKindRaw   ImageKind = "raw"
	ImageKindStack ImageKind = "stack"
	ImageKindDiff  ImageKind = "diff"

	// DefaultImageKind is what queries use when no kind is given.
	DefaultImageKind = ImageKindStack
)

func (k ImageKind) valid() bool {
	switch k {
	case ImageKindRaw, ImageKindStack, ImageKindDiff:
		return true
	}
	return false
}

// ImageQueryBase carries the fields common to every image query.
type ImageQueryBase struct {
	ProgramName string    `json:"program_name" validate:"required"`
	StartDate   string    `json:"start_date" validate:"required"`
	EndDate     string    `json:"end_date" validate:"required"`
	Kind        ImageKind `json:"kind"`
}

func (q ImageQueryBase) Program() string { return q.ProgramName }

func (q ImageQueryBase) checkKind() error {
	if !q.Kind.valid() {
		return fmt.Errorf("unknown image kind %q: %w", q.Kind, werrors.ErrInvalidToO)
	}
	return nil
}

// ImageQuery is any of the query shapes the image endpoint accepts.
type ImageQuery interface {
	Program() string
	Validate() error
}

// ProgramImageQuery returns every image taken under a program.
type ProgramImageQuery struct {
	ImageQueryBase
}

func (q ProgramImageQuery) Validate() error {
	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("%v: %w", err, werrors.ErrInvalidToO)
	}
	return q.checkKind()
}

// TargetImageQuery filters images by the target name used at submission.
type TargetImageQuery struct {
	ImageQueryBase
	TargetName string `json:"target_name" validate:"required"`
}

func (q TargetImageQuery) Validate() error {
	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("%v: %w", err, werrors.ErrInvalidToO)
	}
	return q.checkKind()
}

// ConeImageQuery returns images within a radius of a sky position.
type ConeImageQuery struct {
	ImageQueryBase
	Ra        float64 `json:"ra" validate:"gte=0,lt=360"`
	Dec       float64 `json:"dec" validate:"gte=-90,lte=90"`
	RadiusDeg float64 `json:"radius_deg" validate:"gt=0"`
}

func (q ConeImageQuery) Validate() error {
	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("%v: %w", err, werrors.ErrInvalidToO)
	}
	return q.checkKind()
}

// RectangleImageQuery returns images within an RA/Dec box.
type RectangleImageQuery struct {
	ImageQueryBase
	RaMin  float64 `json:"ra_min" validate:"gte=0,lt=360"`
	RaMax  float64 `json:"ra_max" validate:"gte=0,lt=360,gtefield=RaMin"`
	DecMin float64 `json:"dec_min" validate:"gte=-90,lte=90"`
	DecMax float64 `json:"dec_max" validate:"gte=-90,lte=90,gtefield=DecMin"`
}

func (q RectangleImageQuery) Validate() error {
	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("%v: %w", err, werrors.ErrInvalidToO)
	}
	return q.checkKind()
}

// ImagePath names one server-side image to download.
type ImagePath struct {
	Path string `json:"path" validate:"required"`
}
