// File: utils/constants.go
package utils

import "time"

// WeatherRequestTimeout bounds each outbound Open-Meteo call.
const WeatherRequestTimeout = 10 * time.Second

// CacheJanitorInterval is how often the in-memory cache evicts expired entries.
const CacheJanitorInterval = time.Minute

// ArchiveWriteTimeout bounds the best-effort conversation archive insert.
const ArchiveWriteTimeout = 2 * time.Second
