// Copyright 2025 The dockboard authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/thediveo/success"
)

var _ = Describe("daemon configuration", func() {

	write := func(yaml string) string {
		path := filepath.Join(GinkgoT().TempDir(), "config.yaml")
		Expect(os.WriteFile(path, []byte(yaml), 0o644)).To(Succeed())
		return path
	}

	It("falls back to the defaults for a missing file", func() {
		cfg := Successful(Load(filepath.Join(GinkgoT().TempDir(), "nope.yaml")))
		Expect(cfg.PollInterval).To(Equal(Duration(2 * time.Second)))
		Expect(cfg.CallTimeout).To(Equal(Duration(5 * time.Second)))
		Expect(cfg.SampleConcurrency).To(Equal(8))
		Expect(cfg.LogLevel).To(Equal("info"))
		Expect(cfg.DockerHost).To(BeEmpty())
	})

	It("overlays the file on the defaults", func() {
		cfg := Successful(Load(write(`
docker-host: unix:///run/user/1000/docker.sock
poll-interval: 500ms
log-level: debug
`)))
		Expect(cfg.DockerHost).To(Equal("unix:///run/user/1000/docker.sock"))
		Expect(cfg.PollInterval).To(Equal(Duration(500 * time.Millisecond)))
		Expect(cfg.CallTimeout).To(Equal(Duration(5 * time.Second)))
		Expect(cfg.LogLevel).To(Equal("debug"))
	})

	It("parses durations in Go syntax", func() {
		cfg := Successful(Load(write(`
poll-interval: 1m30s
call-timeout: 10s
`)))
		Expect(time.Duration(cfg.PollInterval)).To(Equal(90 * time.Second))
		Expect(time.Duration(cfg.CallTimeout)).To(Equal(10 * time.Second))
	})

	It("rejects malformed durations", func() {
		_, err := Load(write(`poll-interval: soonish`))
		Expect(err).To(HaveOccurred())
	})

	It("rejects out-of-range values", func() {
		_, err := Load(write(`poll-interval: 0s`))
		Expect(err).To(MatchError(ContainSubstring("poll-interval")))
		_, err = Load(write(`sample-concurrency: -3`))
		Expect(err).To(MatchError(ContainSubstring("sample-concurrency")))
		_, err = Load(write(`log-level: loud`))
		Expect(err).To(MatchError(ContainSubstring("log-level")))
	})

	It("rejects unreadable files", func() {
		dir := GinkgoT().TempDir()
		_, err := Load(dir) // a directory, not a file
		Expect(err).To(HaveOccurred())
	})

})
