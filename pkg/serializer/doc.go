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

// Package serializer reads and writes clusterizer documents.
//
// Output formats:
//   - JSON: machine-readable with two-space indentation
//   - YAML: human-readable
//   - Table: columns for documents implementing Tabular, flattened
//     field paths otherwise
//
// Destinations are stdout, a file, or a Kubernetes ConfigMap addressed as
// cm://namespace/name:
//
//	ser, err := serializer.NewFileWriterOrStdout(serializer.FormatYAML, "cm://monitoring/clusterizer-report")
//	if err != nil {
//		return err
//	}
//	if c, ok := ser.(serializer.Closer); ok {
//		defer c.Close()
//	}
//	if err := ser.Serialize(ctx, report); err != nil {
//		return err
//	}
//
// Documents are read from the same kinds of locations plus http(s) URLs:
//
//	inv, err := serializer.FromFileWithKubeconfig[inventory.Document](ctx, "https://example.com/inventory.yaml", "")
//
// ConfigMaps store the document under document.{json|yaml|txt} next to
// "format" and "timestamp" keys, and are written with server-side apply.
package serializer
