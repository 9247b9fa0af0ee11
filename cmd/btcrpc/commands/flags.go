// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commands

const (
	Config  = "config"
	EnvFile = "env-file"

	URL      = "url"
	User     = "user"
	Password = "password"
	Timeout  = "timeout"

	Retry_Attempts = "retry.attempts"
	Retry_Interval = "retry.interval"
	Retry_Disabled = "retry.disabled"

	Log_Level  = "log.level"
	Log_Format = "log.format"
)
