package server_test

import (
	"net/http"

	"orbital/internal/http/server"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("HTTPServer", func() {
	It("should report ErrServerClosed after a shutdown", func() {
		srv := server.NewHTTP(zap.NewNop().Sugar(), http.NotFoundHandler(), "0")

		errChan := srv.Run()
		Consistently(errChan, "100ms").ShouldNot(Receive())

		Expect(srv.Shutdown()).To(Succeed())
		Eventually(errChan).Should(Receive(MatchError(http.ErrServerClosed)))
	})

	It("should surface listen failures", func() {
		srv := server.NewHTTP(zap.NewNop().Sugar(), http.NotFoundHandler(), "not-a-port")

		var err error
		Eventually(srv.Run()).Should(Receive(&err))
		Expect(err).NotTo(MatchError(http.ErrServerClosed))
	})
})
