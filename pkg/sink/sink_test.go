package sink_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"

	"github.com/angeloszaimis/logfacade/pkg/sink"
)

var _ = Describe("Severity", func() {
	It("should name every severity", func() {
		Expect(sink.SeverityDebug.String()).To(Equal("DEBUG"))
		Expect(sink.SeverityInfo.String()).To(Equal("INFO"))
		Expect(sink.SeverityDefault.String()).To(Equal("DEFAULT"))
		Expect(sink.SeverityError.String()).To(Equal("ERROR"))
		Expect(sink.SeverityFault.String()).To(Equal("FAULT"))
		Expect(sink.Severity(42).String()).To(Equal("UNKNOWN"))
	})

	It("should order slog levels by importance", func() {
		Expect(sink.SeverityDebug.SlogLevel()).To(BeNumerically("<", sink.SeverityInfo.SlogLevel()))
		Expect(sink.SeverityInfo.SlogLevel()).To(BeNumerically("<", sink.SeverityDefault.SlogLevel()))
		Expect(sink.SeverityDefault.SlogLevel()).To(BeNumerically("<", sink.SeverityError.SlogLevel()))
		Expect(sink.SeverityError.SlogLevel()).To(BeNumerically("<", sink.SeverityFault.SlogLevel()))
		Expect(sink.SeverityError.SlogLevel()).To(Equal(slog.LevelError))
	})

	It("should parse names case-insensitively", func() {
		sev, ok := sink.ParseSeverity("fault")
		Expect(ok).To(BeTrue())
		Expect(sev).To(Equal(sink.SeverityFault))

		sev, ok = sink.ParseSeverity("Default")
		Expect(ok).To(BeTrue())
		Expect(sev).To(Equal(sink.SeverityDefault))
	})

	It("should reject unknown names", func() {
		_, ok := sink.ParseSeverity("warn")
		Expect(ok).To(BeFalse())
	})
})

var _ = Describe("Console", func() {
	It("should write one line per record", func() {
		buf := gbytes.NewBuffer()
		c := sink.NewConsole(buf)

		c.Emit(sink.SeverityError, "failed timeout")
		c.Emit(sink.SeverityInfo, "second")

		Expect(string(buf.Contents())).To(Equal("failed timeout\nsecond\n"))
	})

	It("should not interleave concurrent writes", func() {
		var out bytes.Buffer
		c := sink.NewConsole(&out)

		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				c.Emit(sink.SeverityInfo, "abcdefghij")
			}()
		}
		wg.Wait()

		lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
		Expect(lines).To(HaveLen(50))
		for _, l := range lines {
			Expect(l).To(Equal("abcdefghij"))
		}
	})
})

var _ = Describe("Unavailable", func() {
	It("should never acquire a sink", func() {
		s, err := sink.Unavailable().Acquire("app", "Net")
		Expect(err).To(MatchError(sink.ErrUnavailable))
		Expect(s).To(BeNil())
	})
})

var _ = Describe("SlogProvider", func() {
	It("should be unavailable without a handler", func() {
		_, err := sink.NewSlogProvider(nil).Acquire("app", "Net")
		Expect(err).To(MatchError(sink.ErrUnavailable))
	})

	It("should refuse an empty identity", func() {
		var out bytes.Buffer
		p := sink.NewSlogProvider(sink.NewHandler(&out, "debug", "dev"))

		_, err := p.Acquire("", "Net")
		Expect(err).To(MatchError(sink.ErrUnavailable))
	})

	It("should tag records with subsystem and category", func() {
		var out bytes.Buffer
		p := sink.NewSlogProvider(sink.NewHandler(&out, "debug", "dev"))

		s, err := p.Acquire("com.example.app", "Net")
		Expect(err).NotTo(HaveOccurred())

		s.Emit(sink.SeverityError, "failed timeout")

		line := out.String()
		Expect(line).To(ContainSubstring("level=ERROR"))
		Expect(line).To(ContainSubstring(`msg="failed timeout"`))
		Expect(line).To(ContainSubstring("environment=dev"))
		Expect(line).To(ContainSubstring("subsystem=com.example.app"))
		Expect(line).To(ContainSubstring("category=Net"))
	})

	It("should render custom severity names", func() {
		var out bytes.Buffer
		p := sink.NewSlogProvider(sink.NewHandler(&out, "debug", "dev"))
		s, _ := p.Acquire("app", "Net")

		s.Emit(sink.SeverityDefault, "a")
		s.Emit(sink.SeverityFault, "b")

		Expect(out.String()).To(ContainSubstring("level=DEFAULT"))
		Expect(out.String()).To(ContainSubstring("level=FAULT"))
	})

	It("should write JSON in prod", func() {
		var out bytes.Buffer
		p := sink.NewSlogProvider(sink.NewHandler(&out, "info", "prod"))
		s, _ := p.Acquire("app", "DB")

		s.Emit(sink.SeverityInfo, "code %@ stays literal")

		var rec map[string]any
		Expect(json.Unmarshal(out.Bytes(), &rec)).To(Succeed())
		Expect(rec["msg"]).To(Equal("code %@ stays literal"))
		Expect(rec["level"]).To(Equal("INFO"))
		Expect(rec["category"]).To(Equal("DB"))
		Expect(rec["environment"]).To(Equal("prod"))
	})

	It("should drop records below the handler level", func() {
		var out bytes.Buffer
		p := sink.NewSlogProvider(sink.NewHandler(&out, "error", "dev"))
		s, _ := p.Acquire("app", "Net")

		s.Emit(sink.SeverityDefault, "quiet")
		Expect(out.Len()).To(BeZero())

		s.Emit(sink.SeverityFault, "loud")
		Expect(out.String()).To(ContainSubstring("loud"))
	})

	It("should default an unknown handler level to info", func() {
		var out bytes.Buffer
		p := sink.NewSlogProvider(sink.NewHandler(&out, "invalid", "dev"))
		s, _ := p.Acquire("app", "Net")

		s.Emit(sink.SeverityDebug, "hidden")
		Expect(out.Len()).To(BeZero())

		s.Emit(sink.SeverityInfo, "shown")
		Expect(out.String()).To(ContainSubstring("shown"))
	})
})
