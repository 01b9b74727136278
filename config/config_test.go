/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package config_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	"dirpx.dev/gid/config"
)

func TestDefaultConfigValues(t *testing.T) {
	got := config.DefaultConfig()

	assert.Equal(t, config.DefaultApp, got.App)
	assert.Equal(t, config.DefaultIgnoreMissing, got.IgnoreMissing)
	assert.Equal(t, config.DefaultMaxUnwrap, got.MaxUnwrap)
	assert.Equal(t, config.DefaultSealOnResolve, got.SealOnResolve)
	assert.Nil(t, got.Tracer)
}

func TestNewConfig_NoOptions_EqualsDefault(t *testing.T) {
	def := config.DefaultConfig()
	got := config.NewConfig()

	assert.Equal(t, def.App, got.App)
	assert.Equal(t, def.IgnoreMissing, got.IgnoreMissing)
	assert.Equal(t, def.MaxUnwrap, got.MaxUnwrap)
	assert.Equal(t, def.SealOnResolve, got.SealOnResolve)
}

func TestWithApp_Lowercases(t *testing.T) {
	c := config.NewConfig(config.WithApp("BCX"))
	assert.Equal(t, "bcx", c.App)
}

func TestWithIgnoreMissing(t *testing.T) {
	c := config.NewConfig(config.WithIgnoreMissing(false))
	assert.False(t, c.IgnoreMissing)

	c2 := config.NewConfig(config.WithIgnoreMissing(true))
	assert.True(t, c2.IgnoreMissing)
}

func TestWithMaxUnwrap(t *testing.T) {
	cases := []struct {
		name string
		in   int
		want int
	}{
		{"positive", 3, 3},
		{"zero resets", 0, config.DefaultMaxUnwrap},
		{"negative resets", -5, config.DefaultMaxUnwrap},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := config.NewConfig(config.WithMaxUnwrap(tc.in))
			assert.Equal(t, tc.want, c.MaxUnwrap)
		})
	}
}

func TestWithSealOnResolve(t *testing.T) {
	c := config.NewConfig(config.WithSealOnResolve(false))
	assert.False(t, c.SealOnResolve)
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	c := config.NewConfig(config.WithLogger(zerolog.New(&buf)))

	c.Logger.Info().Msg("hello")
	require.Contains(t, buf.String(), `"message":"hello"`)
}

func TestWithTracer(t *testing.T) {
	tr := noop.NewTracerProvider().Tracer("test")
	c := config.NewConfig(config.WithTracer(tr))
	assert.NotNil(t, c.Tracer)
}
