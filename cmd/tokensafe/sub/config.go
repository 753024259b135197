// Copyright 2021 The tokensafe Authors
// This file is part of the tokensafe library.
//
// The tokensafe library is free software: you can redistribute it and/or modify
// it under the terms of the MIT Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The tokensafe library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// MIT Lesser General Public License for more details.
//
// You should have received a copy of the MIT Lesser General Public License
// along with the tokensafe library. If not, see <https://mit-license.org/>.

package sub

import (
	"os"
	"tokensafe"
	"tokensafe/log"

	"github.com/spf13/viper"
)

const (
	defaultConfigFile         = "./config.yml"
	defaultLoggerLevel        = "INFO"
	defaultDecimals           = 0
	defaultSentinelViaApprove = true
)

type loggerParams struct {
	level string
}

type ledgerParams struct {
	sentinelViaApprove bool
}

type cliConfig struct {
	loggerParams loggerParams
	ledgerParams ledgerParams
	decimals     int32
}

func readConfig() (*cliConfig, error) {
	config := &cliConfig{
		loggerParams: loggerParams{level: defaultLoggerLevel},
		ledgerParams: ledgerParams{sentinelViaApprove: defaultSentinelViaApprove},
		decimals:     defaultDecimals,
	}
	if _, err := os.Stat(cfgFile); err != nil {
		// Missing config file means defaults; only an unreadable or
		// malformed one is an error.
		return config, nil
	}
	v := viper.New()
	v.SetConfigFile(cfgFile)
	v.SetDefault("logger.level", defaultLoggerLevel)
	v.SetDefault("ledger.sentinel_via_approve", defaultSentinelViaApprove)
	v.SetDefault("encode.decimals", defaultDecimals)
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}
	config.loggerParams.level = v.GetString("logger.level")
	config.ledgerParams.sentinelViaApprove = v.GetBool("ledger.sentinel_via_approve")
	config.decimals = v.GetInt32("encode.decimals")
	return config, nil
}

func (c *cliConfig) ledgerConfig() tokensafe.Config {
	return tokensafe.Config{
		SentinelViaApprove: c.ledgerParams.sentinelViaApprove,
		Logger:             log.WithLevel(c.loggerParams.level),
	}
}
