package model

import "errors"

// Error kinds surfaced by the pipeline. All of them are terminal for the
// invocation; none warrant a retry.
var (
	ErrDataSourceNotFound     = errors.New("data source not found")
	ErrSheetNotFound          = errors.New("sheet not found")
	ErrMalformedTable         = errors.New("malformed indicator table")
	ErrUnknownIndicator       = errors.New("unknown indicator")
	ErrRenderTargetUnwritable = errors.New("render target unwritable")
)
