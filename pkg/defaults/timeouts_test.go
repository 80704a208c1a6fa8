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

package defaults

import (
	"testing"
	"time"
)

func TestTimeoutConstants(t *testing.T) {
	tests := []struct {
		name     string
		timeout  time.Duration
		minValue time.Duration
		maxValue time.Duration
	}{
		// Adapter timeouts
		{"AuthTimeout", AuthTimeout, 5 * time.Second, 2 * time.Minute},
		{"ListTimeout", ListTimeout, 30 * time.Second, 10 * time.Minute},
		{"UsageQueryTimeout", UsageQueryTimeout, 30 * time.Second, 10 * time.Minute},
		{"UsageQueryServerWait", UsageQueryServerWait, 10 * time.Second, 10 * time.Minute},

		// HTTP client timeouts
		{"HTTPClientTimeout", HTTPClientTimeout, 10 * time.Second, 60 * time.Second},
		{"HTTPConnectTimeout", HTTPConnectTimeout, 1 * time.Second, 15 * time.Second},

		// ConfigMap timeouts
		{"ConfigMapWriteTimeout", ConfigMapWriteTimeout, 5 * time.Second, 2 * time.Minute},
		{"ConfigMapReadTimeout", ConfigMapReadTimeout, 5 * time.Second, 2 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.timeout < tt.minValue {
				t.Errorf("%s (%v) is below minimum expected value (%v)", tt.name, tt.timeout, tt.minValue)
			}
			if tt.timeout > tt.maxValue {
				t.Errorf("%s (%v) is above maximum expected value (%v)", tt.name, tt.timeout, tt.maxValue)
			}
		})
	}
}

func TestUsageQueryServerWaitLessThanClientTimeout(t *testing.T) {
	// Server-side wait expires before the client deadline.
	if UsageQueryServerWait >= UsageQueryTimeout {
		t.Errorf("UsageQueryServerWait (%v) should be less than UsageQueryTimeout (%v)",
			UsageQueryServerWait, UsageQueryTimeout)
	}
}

func TestUsageQueryShaping(t *testing.T) {
	if UsageQueryRate <= 0 {
		t.Errorf("UsageQueryRate (%v) must be positive", UsageQueryRate)
	}
	if UsageQueryBurst < 1 {
		t.Errorf("UsageQueryBurst (%v) must allow at least one query", UsageQueryBurst)
	}
}

func TestHTTPClientTimeoutRelationships(t *testing.T) {
	// Connect timeout should be less than total timeout
	if HTTPConnectTimeout >= HTTPClientTimeout {
		t.Errorf("HTTPConnectTimeout (%v) should be less than HTTPClientTimeout (%v)",
			HTTPConnectTimeout, HTTPClientTimeout)
	}

	// TLS handshake timeout should be less than total timeout
	if HTTPTLSHandshakeTimeout >= HTTPClientTimeout {
		t.Errorf("HTTPTLSHandshakeTimeout (%v) should be less than HTTPClientTimeout (%v)",
			HTTPTLSHandshakeTimeout, HTTPClientTimeout)
	}
}
