package spans

var WithoutTracerCounter = reportWithoutTracerCounter //nolint:gochecknoglobals
