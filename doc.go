// Copyright 2021 Google LLC
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

// Package oxd implements a client for the Oxford Dictionaries API in pure Go.
//
// The repository is split into several packages:
//  1. model contains the entry tree returned by the API and its decoder.
//  2. analyze contains predicates over the tree such as emptiness and
//     pronunciation consistency.
//  3. render renders a tree as terminal text or as an HTML fragment.
//  4. cache stores raw API responses on disk.
//  5. pronounce plays the audio files referenced by pronunciations.
//
// This package retrieves entries from the API. Requests need an application
// id and key which can be obtained from the Oxford Dictionaries developer
// site:
// https://developer.oxforddictionaries.com/
package oxd
