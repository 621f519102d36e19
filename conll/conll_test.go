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

package conll

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

const catSat = "1\tThe\t_\tDT\tDT\t_\t2\tdet\t_\t_\n" +
	"2\tcat\t_\tNN\tNN\t_\t3\tnsubj\t_\t_\n" +
	"3\tsat\t_\tVB\tVB\t_\t0\troot\t_\t_\n\n"

func TestReadWriteRoundTrip(t *testing.T) {
	r := NewTreeReader(strings.NewReader(catSat))
	tr, err := r.Next()
	require.NoError(t, err)
	require.Equal(t, 3, tr.Len())

	_, err = r.Next()
	require.ErrorIs(t, err, io.EOF)

	var sb strings.Builder
	require.NoError(t, WriteTree(&sb, tr))
	require.Equal(t, catSat, sb.String())
}

func TestReadMultipleTrees(t *testing.T) {
	input := catSat + catSat
	r := NewTreeReader(strings.NewReader(input))

	first, err := r.Next()
	require.NoError(t, err)
	require.Equal(t, 3, first.Len())

	second, err := r.Next()
	require.NoError(t, err)
	require.Equal(t, 3, second.Len())

	_, err = r.Next()
	require.ErrorIs(t, err, io.EOF)
}

func TestReadNoTrailingBlankLine(t *testing.T) {
	input := strings.TrimSuffix(catSat, "\n")
	r := NewTreeReader(strings.NewReader(input))
	tr, err := r.Next()
	require.NoError(t, err)
	require.Equal(t, 3, tr.Len())
}

func TestReadRejectsWrongFieldCount(t *testing.T) {
	r := NewTreeReader(strings.NewReader("1\tThe\t_\tDT\tDT\t_\t2\tdet\n\n"))
	_, err := r.Next()
	require.Error(t, err)
	var parseErr *CoNLLParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestReadRejectsNonSequentialID(t *testing.T) {
	r := NewTreeReader(strings.NewReader("2\tThe\t_\tDT\tDT\t_\t0\tdet\t_\t_\n\n"))
	_, err := r.Next()
	require.Error(t, err)
	var parseErr *CoNLLParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestReadRejectsEmptyField(t *testing.T) {
	r := NewTreeReader(strings.NewReader("1\t\t_\tDT\tDT\t_\t0\tdet\t_\t_\n\n"))
	_, err := r.Next()
	require.Error(t, err)
}

func TestReadRejectsWhitespaceInField(t *testing.T) {
	r := NewTreeReader(strings.NewReader("1\tThe cat\t_\tDT\tDT\t_\t0\tdet\t_\t_\n\n"))
	_, err := r.Next()
	require.Error(t, err)
}

func TestWriteRejectsInvalidForm(t *testing.T) {
	input := "1\t_\t_\tDT\tDT\t_\t0\tdet\t_\t_\n\n"
	// The reader accepts FORM "_" (only lemma and feats treat "_" as the
	// empty sentinel); writing it back out must still reject it as an
	// invalid FORM since "_" cannot round-trip unambiguously.
	r := NewTreeReader(strings.NewReader(input))
	tr, err := r.Next()
	require.NoError(t, err)

	var sb strings.Builder
	err = WriteTree(&sb, tr)
	require.Error(t, err)
	var invalid *InvalidField
	require.ErrorAs(t, err, &invalid)
	require.Equal(t, "form", invalid.Name)
}

func TestReadAllReturnsAllTreesWhenNoneMalformed(t *testing.T) {
	trees, err := ReadAll(strings.NewReader(catSat + catSat))
	require.NoError(t, err)
	require.Len(t, trees, 2)
}

func TestReadAllCollectsEveryMalformedSentence(t *testing.T) {
	malformed := "1\tThe\t_\tDT\tDT\t_\t2\tdet\n\n" // wrong field count
	input := malformed + catSat + malformed + catSat
	trees, err := ReadAll(strings.NewReader(input))
	require.Error(t, err)
	require.Len(t, trees, 2)

	errs := multierr.Errors(err)
	require.Len(t, errs, 2)
	for _, e := range errs {
		var parseErr *CoNLLParseError
		require.ErrorAs(t, e, &parseErr)
	}
}

func TestSkipToNextBlankResumesAtNextSentence(t *testing.T) {
	r := NewTreeReader(strings.NewReader("1\tThe\t_\tDT\tDT\t_\t2\tdet\n\n" + catSat))
	_, err := r.Next()
	var parseErr *CoNLLParseError
	require.ErrorAs(t, err, &parseErr)

	require.NoError(t, r.SkipToNextBlank())

	tr, err := r.Next()
	require.NoError(t, err)
	require.Equal(t, 3, tr.Len())
}
