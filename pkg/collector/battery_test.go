// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

package collector

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatteryCollector(t *testing.T) {
	sys := t.TempDir()
	writeFixture(t, sys, "class/power_supply/usb/type", "USB\n")
	writeFixture(t, sys, "class/power_supply/battery/type", "Battery\n")
	writeFixture(t, sys, "class/power_supply/battery/capacity", "85\n")
	writeFixture(t, sys, "class/power_supply/battery/status", "Charging\n")
	writeFixture(t, sys, "class/power_supply/battery/temp", "312\n")

	c := &BatteryCollector{SysRoot: sys}
	got, err := c.Collect(context.Background())
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, 85, got.LevelPercent)
	assert.True(t, got.Charging)
	assert.InDelta(t, 31.2, got.TemperatureC, 0.01)
	assert.True(t, got.Valid())
}

func TestBatteryCollector_Discharging(t *testing.T) {
	sys := t.TempDir()
	writeFixture(t, sys, "class/power_supply/battery/type", "Battery\n")
	writeFixture(t, sys, "class/power_supply/battery/capacity", "42\n")
	writeFixture(t, sys, "class/power_supply/battery/status", "Discharging\n")

	c := &BatteryCollector{SysRoot: sys}
	got, err := c.Collect(context.Background())
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, 42, got.LevelPercent)
	assert.False(t, got.Charging)
	// Missing temp attribute degrades to zero, not an error.
	assert.Zero(t, got.TemperatureC)
}

func TestBatteryCollector_NoBattery(t *testing.T) {
	sys := t.TempDir()
	writeFixture(t, sys, "class/power_supply/ac/type", "Mains\n")

	c := &BatteryCollector{SysRoot: sys}
	got, err := c.Collect(context.Background())
	require.NoError(t, err, "devices without a battery are not an error")
	assert.Nil(t, got)
}

func TestBatteryCollector_NoPowerSupplyClass(t *testing.T) {
	c := &BatteryCollector{SysRoot: t.TempDir()}
	got, err := c.Collect(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestBatteryCollector_MissingCapacity(t *testing.T) {
	sys := t.TempDir()
	writeFixture(t, sys, "class/power_supply/battery/type", "Battery\n")
	writeFixture(t, sys, "class/power_supply/battery/status", "Full\n")

	c := &BatteryCollector{SysRoot: sys}
	_, err := c.Collect(context.Background())
	require.Error(t, err, "a battery without a readable capacity is a failed probe")
}
