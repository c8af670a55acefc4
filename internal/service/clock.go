package service

import "time"

// nowFunc is stubbed in tests.
var nowFunc = time.Now
