//  Copyright (c) 2023 Uber Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadPopulatesFields(t *testing.T) {
	doc := `
continue_on_codec_error: true
regex_cache_size: 512
script_paths:
  - ./scripts
  - /etc/dep-tregex/scripts
`
	cfg, err := Load(strings.NewReader(doc))
	require.NoError(t, err)
	require.True(t, cfg.ContinueOnCodecError)
	require.Equal(t, 512, cfg.RegexCacheSize)
	require.Equal(t, []string{"./scripts", "/etc/dep-tregex/scripts"}, cfg.ScriptPaths)
}

func TestLoadEmptyDocumentIsDefault(t *testing.T) {
	cfg, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	_, err := Load(strings.NewReader("continue_on_codec_error: [this is not a bool"))
	require.Error(t, err)
}

func TestLoadFileMissingPath(t *testing.T) {
	_, err := LoadFile("/nonexistent/dep-tregex.yaml")
	require.Error(t, err)
}
