//go:build !debug

package logger_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/angeloszaimis/logfacade/pkg/logger"
)

var _ = Describe("BuildVerbose", func() {
	It("should be off unless built with the debug tag", func() {
		Expect(logger.BuildVerbose()).To(BeFalse())
	})
})
