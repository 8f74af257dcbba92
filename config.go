// config.go
//
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf
//
// Ambient configuration loading: defaults, overridden by an optional
// .env file, overridden by the process environment, overridden last
// by command-line flags (applied by the cmd/ entrypoints themselves).
// This generalizes the teacher lineage's own os.Getenv("PORT")-with-
// fallback convention in go-app/main.go to also cover the dictionary
// path and default result cap, and gives github.com/joho/godotenv - a
// dependency the lineage's go.mod carries but no file in it actually
// imports - the job its presence implies.

/*

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.

*/

package wordline

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the settings shared by both cmd/ entrypoints.
type Config struct {
	DictionaryPath string
	DefaultLimit   int
	Addr           string
	AccessKey      string
}

// LoadConfig loads a .env file if one is present (silently ignored if
// not - a missing .env is not an error, it just means "rely on the
// real environment") and returns a Config populated from
// WORDLINE_DICTIONARY, WORDLINE_LIMIT, WORDLINE_ADDR and
// WORDLINE_ACCESS_KEY. Command-line flags, applied by the caller,
// always take precedence over what this returns.
func LoadConfig() Config {
	_ = godotenv.Load()

	cfg := Config{Addr: ":8080"}
	cfg.DictionaryPath = os.Getenv("WORDLINE_DICTIONARY")
	if v := os.Getenv("WORDLINE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.DefaultLimit = n
		}
	}
	if v := os.Getenv("WORDLINE_ADDR"); v != "" {
		cfg.Addr = v
	}
	cfg.AccessKey = os.Getenv("WORDLINE_ACCESS_KEY")
	return cfg
}
