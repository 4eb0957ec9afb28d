package autoscaler_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"code.cloudfoundry.org/lager/v3/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/ghttp"
	"github.com/osb-autoscaler/autoscaler-broker/autoscaler"
	"github.com/osb-autoscaler/autoscaler-broker/config"
	"github.com/osb-autoscaler/autoscaler-broker/domain"
	"github.com/osb-autoscaler/autoscaler-broker/middlewares"
)

var _ = Describe("Gateway", func() {
	const (
		bindingID  = "b1"
		appGUID    = "a1"
		instanceID = "i1"
	)

	var (
		server    *ghttp.Server
		logger    *lagertest.TestLogger
		createdAt time.Time
		platform  config.AutoscalerPlatform
		endpoints config.EndpointConfiguration
		instance  domain.ServiceInstance
		gateway   *autoscaler.Gateway
		ctx       context.Context
	)

	expectedRequest := func() string {
		return fmt.Sprintf(`{
			"id": "b1",
			"appId": "a1",
			"appType": "unknown",
			"scalerId": "scaler-1",
			"serviceInstanceId": "i1",
			"creationTime": %d,
			"context": {"platform": "cloudfoundry", "spaceId": "s1", "organizationId": "o1"}
		}`, createdAt.UnixMilli())
	}

	BeforeEach(func() {
		server = ghttp.NewServer()
		logger = lagertest.NewTestLogger("test")
		createdAt = time.UnixMilli(1700000000123)
		platform = config.AutoscalerPlatform{Platform: "cloudfoundry", ScalerID: "scaler-1"}
		endpoints = config.EndpointConfiguration{Custom: []config.ServerAddress{
			{Identifier: "osb-dashboard", URL: "https://dashboard.example"},
			{Identifier: autoscaler.CoreIdentifier, URL: server.URL()},
		}}
		instance = domain.ServiceInstance{ID: instanceID, OrganizationGUID: "o1", SpaceGUID: "s1"}
		ctx = context.Background()
	})

	JustBeforeEach(func() {
		gateway = autoscaler.NewGateway(endpoints, platform, logger, autoscaler.WithClock(func() time.Time { return createdAt }))
	})

	AfterEach(func() {
		server.Close()
	})

	Describe("NewGateway", func() {
		It("does not talk to the core", func() {
			Expect(gateway.Configured()).To(BeTrue())
			Expect(server.ReceivedRequests()).To(BeEmpty())
		})

		It("ignores a trailing slash on the core url", func() {
			endpoints.Custom[1].URL = server.URL() + "/"
			gateway = autoscaler.NewGateway(endpoints, platform, logger)
			server.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyRequest(http.MethodDelete, "/bindings/b1"),
				ghttp.RespondWith(http.StatusOK, ""),
			))

			Expect(gateway.DeleteBinding(ctx, bindingID, instanceID)).To(Succeed())
		})

		Context("when no descriptor names the autoscaler core", func() {
			BeforeEach(func() {
				endpoints.Custom = endpoints.Custom[:1]
			})

			It("is left without a target and logs it", func() {
				Expect(gateway.Configured()).To(BeFalse())
				Expect(logger.LogMessages()).To(ContainElement("test.autoscaler-gateway.core-endpoint-missing"))
			})
		})
	})

	Describe("CreateBinding", func() {
		Context("when the core accepts the binding", func() {
			BeforeEach(func() {
				server.AppendHandlers(ghttp.CombineHandlers(
					ghttp.VerifyRequest(http.MethodPost, "/bindings"),
					ghttp.VerifyContentType("application/json"),
					ghttp.VerifyJSON(expectedRequest()),
					ghttp.RespondWith(http.StatusCreated, ""),
				))
			})

			It("returns the binding without credentials", func() {
				binding, err := gateway.CreateBinding(ctx, bindingID, appGUID, instance)
				Expect(err).NotTo(HaveOccurred())
				Expect(binding).To(Equal(domain.ServiceInstanceBinding{
					ID:                bindingID,
					ServiceInstanceID: instanceID,
					AppGUID:           appGUID,
					Credentials:       map[string]any{},
				}))
				Expect(server.ReceivedRequests()).To(HaveLen(1))
			})

			It("logs the outcome", func() {
				_, err := gateway.CreateBinding(ctx, bindingID, appGUID, instance)
				Expect(err).NotTo(HaveOccurred())

				log := findLog(logger, "test.autoscaler-gateway.create-binding.succeeded")
				Expect(log.Data).To(HaveKeyWithValue("instance-id", instanceID))
				Expect(log.Data).To(HaveKeyWithValue("binding-id", bindingID))
				Expect(log.Data).To(HaveKeyWithValue("status", BeNumerically("==", http.StatusCreated)))
			})
		})

		DescribeTable("accepts every 2xx status",
			func(status int) {
				server.AppendHandlers(ghttp.RespondWith(status, ""))

				binding, err := gateway.CreateBinding(ctx, bindingID, appGUID, instance)
				Expect(err).NotTo(HaveOccurred())
				Expect(binding.Credentials).To(BeEmpty())
			},
			Entry("200", http.StatusOK),
			Entry("201", http.StatusCreated),
			Entry("202", http.StatusAccepted),
			Entry("204", http.StatusNoContent),
		)

		It("forwards the correlation id of the incoming request", func() {
			ctx = context.WithValue(ctx, middlewares.CorrelationIDKey, "correlation-1")
			server.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyHeaderKV("X-Correlation-ID", "correlation-1"),
				ghttp.RespondWith(http.StatusCreated, ""),
			))

			_, err := gateway.CreateBinding(ctx, bindingID, appGUID, instance)
			Expect(err).NotTo(HaveOccurred())
		})

		It("fails with a bad request carrying the body verbatim on 400", func() {
			server.AppendHandlers(ghttp.RespondWith(http.StatusBadRequest, `{"error":"scalerId unknown"}`))

			_, err := gateway.CreateBinding(ctx, bindingID, appGUID, instance)

			var badRequest *domain.BadRequestError
			Expect(errors.As(err, &badRequest)).To(BeTrue())
			Expect(badRequest.Body).To(Equal(`{"error":"scalerId unknown"}`))
			Expect(badRequest.BindingID).To(Equal(bindingID))
		})

		It("fails as unauthorized on 401", func() {
			server.AppendHandlers(ghttp.RespondWith(http.StatusUnauthorized, ""))

			_, err := gateway.CreateBinding(ctx, bindingID, appGUID, instance)
			Expect(err).To(MatchError(domain.ErrBrokerUnauthorized))
		})

		It("fails with a conflict on 409 and logs the context", func() {
			server.AppendHandlers(ghttp.RespondWith(http.StatusConflict, `{"error":"conflict"}`))

			_, err := gateway.CreateBinding(ctx, bindingID, appGUID, instance)
			Expect(err).To(MatchError(domain.ErrBindingConflict))

			log := findLog(logger, "test.autoscaler-gateway.create-binding.failed")
			Expect(log.Data).To(HaveKeyWithValue("instance-id", instanceID))
			Expect(log.Data).To(HaveKeyWithValue("binding-id", bindingID))
			Expect(log.Data).To(HaveKeyWithValue("status", BeNumerically("==", http.StatusConflict)))
			Expect(log.Data).To(HaveKeyWithValue("body", `{"error":"conflict"}`))
		})

		It("fails with a remote error on any other status", func() {
			server.AppendHandlers(ghttp.RespondWith(http.StatusServiceUnavailable, "down for maintenance"))

			_, err := gateway.CreateBinding(ctx, bindingID, appGUID, instance)

			var remote *domain.RemoteError
			Expect(errors.As(err, &remote)).To(BeTrue())
			Expect(remote.Operation).To(Equal("create"))
			Expect(remote.StatusCode).To(Equal(http.StatusServiceUnavailable))
			Expect(remote.Body).To(Equal("down for maintenance"))
		})

		It("does not follow a redirect and fails with a remote error", func() {
			server.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyRequest(http.MethodPost, "/bindings"),
				ghttp.RespondWith(http.StatusFound, "", http.Header{"Location": {"/elsewhere"}}),
			))
			server.RouteToHandler(http.MethodGet, "/elsewhere", ghttp.RespondWith(http.StatusOK, ""))

			_, err := gateway.CreateBinding(ctx, bindingID, appGUID, instance)

			var remote *domain.RemoteError
			Expect(errors.As(err, &remote)).To(BeTrue())
			Expect(remote.Operation).To(Equal("create"))
			Expect(remote.StatusCode).To(Equal(http.StatusFound))
			Expect(server.ReceivedRequests()).To(HaveLen(1))
			Expect(findLog(logger, "test.autoscaler-gateway.create-binding.failed").Data).To(HaveKeyWithValue("status", BeNumerically("==", http.StatusFound)))
		})

		It("does not pass a body it could not read off as a bad request", func() {
			readFailure := errors.New("connection reset")
			gateway = autoscaler.NewGateway(endpoints, platform, logger, autoscaler.WithTransport(brokenBody(http.StatusBadRequest, `{"error":`, readFailure)))

			_, err := gateway.CreateBinding(ctx, bindingID, appGUID, instance)

			var badRequest *domain.BadRequestError
			Expect(errors.As(err, &badRequest)).To(BeFalse())

			var remote *domain.RemoteError
			Expect(errors.As(err, &remote)).To(BeTrue())
			Expect(remote.StatusCode).To(Equal(http.StatusBadRequest))
			Expect(remote.Body).To(Equal(`{"error":`))
			Expect(errors.Is(err, readFailure)).To(BeTrue())
		})

		Context("when the transport fails", func() {
			transportFailing := func(err error) *autoscaler.Gateway {
				return autoscaler.NewGateway(endpoints, platform, logger, autoscaler.WithTransport(roundTripperFunc(func(*http.Request) (*http.Response, error) {
					return nil, err
				})))
			}

			It("classifies an error carrying a 400 like a literal 400", func() {
				gateway = transportFailing(statusError{status: http.StatusBadRequest, body: "bad payload"})

				_, err := gateway.CreateBinding(ctx, bindingID, appGUID, instance)
				Expect(err).To(Equal(&domain.BadRequestError{BindingID: bindingID, Body: "bad payload"}))
			})

			It("classifies an error carrying a 409 like a literal 409", func() {
				gateway = transportFailing(statusError{status: http.StatusConflict})

				_, err := gateway.CreateBinding(ctx, bindingID, appGUID, instance)
				Expect(err).To(MatchError(domain.ErrBindingConflict))
			})

			It("reports a connection failure as a remote error without status", func() {
				connectionRefused := errors.New("connection refused")
				gateway = transportFailing(connectionRefused)

				_, err := gateway.CreateBinding(ctx, bindingID, appGUID, instance)

				var remote *domain.RemoteError
				Expect(errors.As(err, &remote)).To(BeTrue())
				Expect(remote.StatusCode).To(BeZero())
				Expect(remote.Body).To(ContainSubstring("connection refused"))
				Expect(errors.Is(err, connectionRefused)).To(BeTrue())
			})
		})

		Context("when the autoscaler core is not configured", func() {
			BeforeEach(func() {
				endpoints.Custom = nil
			})

			It("fails with a configuration error without calling out", func() {
				_, err := gateway.CreateBinding(ctx, bindingID, appGUID, instance)
				Expect(err).To(MatchError(domain.ErrCoreEndpointNotConfigured))
				Expect(err.Error()).To(ContainSubstring("osb-autoscaler-core"))
				Expect(server.ReceivedRequests()).To(BeEmpty())
			})
		})

		It("can be used concurrently", func() {
			server.RouteToHandler(http.MethodPost, "/bindings", ghttp.RespondWith(http.StatusCreated, ""))

			var wg sync.WaitGroup
			for i := 0; i < 10; i++ {
				wg.Add(1)
				go func(i int) {
					defer GinkgoRecover()
					defer wg.Done()

					id := fmt.Sprintf("binding-%d", i)
					binding, err := gateway.CreateBinding(ctx, id, appGUID, instance)
					Expect(err).NotTo(HaveOccurred())
					Expect(binding.ID).To(Equal(id))
				}(i)
			}
			wg.Wait()

			Expect(server.ReceivedRequests()).To(HaveLen(10))
		})
	})

	Describe("DeleteBinding", func() {
		It("deletes the binding by its id", func() {
			server.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyRequest(http.MethodDelete, "/bindings/b1"),
				ghttp.VerifyContentType("application/json"),
				ghttp.RespondWith(http.StatusNoContent, ""),
			))

			Expect(gateway.DeleteBinding(ctx, bindingID, instanceID)).To(Succeed())
			Expect(server.ReceivedRequests()).To(HaveLen(1))
			Expect(findLog(logger, "test.autoscaler-gateway.delete-binding.succeeded").Data).To(HaveKeyWithValue("binding-id", bindingID))
		})

		It("fails as gone on 410", func() {
			server.AppendHandlers(ghttp.RespondWith(http.StatusGone, ""))

			Expect(gateway.DeleteBinding(ctx, bindingID, instanceID)).To(MatchError(domain.ErrBindingGone))
			Expect(findLog(logger, "test.autoscaler-gateway.delete-binding.failed").Data).To(HaveKeyWithValue("status", BeNumerically("==", http.StatusGone)))
		})

		It("fails as unauthorized on 401", func() {
			server.AppendHandlers(ghttp.RespondWith(http.StatusUnauthorized, ""))

			Expect(gateway.DeleteBinding(ctx, bindingID, instanceID)).To(MatchError(domain.ErrBrokerUnauthorized))
		})

		It("does not treat 409 as special", func() {
			server.AppendHandlers(ghttp.RespondWith(http.StatusConflict, "conflict"))

			err := gateway.DeleteBinding(ctx, bindingID, instanceID)

			var remote *domain.RemoteError
			Expect(errors.As(err, &remote)).To(BeTrue())
			Expect(remote.Operation).To(Equal("delete"))
			Expect(remote.StatusCode).To(Equal(http.StatusConflict))
			Expect(remote.Body).To(Equal("conflict"))
		})

		It("does not follow a redirect", func() {
			server.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyRequest(http.MethodDelete, "/bindings/b1"),
				ghttp.RespondWith(http.StatusSeeOther, "", http.Header{"Location": {"/elsewhere"}}),
			))
			server.RouteToHandler(http.MethodGet, "/elsewhere", ghttp.RespondWith(http.StatusOK, ""))

			err := gateway.DeleteBinding(ctx, bindingID, instanceID)

			var remote *domain.RemoteError
			Expect(errors.As(err, &remote)).To(BeTrue())
			Expect(remote.Operation).To(Equal("delete"))
			Expect(remote.StatusCode).To(Equal(http.StatusSeeOther))
			Expect(server.ReceivedRequests()).To(HaveLen(1))
		})

		It("does not report gone when the body could not be read", func() {
			readFailure := errors.New("connection reset")
			gateway = autoscaler.NewGateway(endpoints, platform, logger, autoscaler.WithTransport(brokenBody(http.StatusGone, "", readFailure)))

			err := gateway.DeleteBinding(ctx, bindingID, instanceID)

			Expect(err).NotTo(MatchError(domain.ErrBindingGone))
			Expect(errors.Is(err, readFailure)).To(BeTrue())
		})

		It("classifies a transport error carrying a 410 like a literal 410", func() {
			gateway = autoscaler.NewGateway(endpoints, platform, logger, autoscaler.WithTransport(roundTripperFunc(func(*http.Request) (*http.Response, error) {
				return nil, statusError{status: http.StatusGone}
			})))

			Expect(gateway.DeleteBinding(ctx, bindingID, instanceID)).To(MatchError(domain.ErrBindingGone))
		})

		Context("when the autoscaler core is not configured", func() {
			BeforeEach(func() {
				endpoints.Custom = nil
			})

			It("fails with a configuration error without calling out", func() {
				Expect(gateway.DeleteBinding(ctx, bindingID, instanceID)).To(MatchError(domain.ErrCoreEndpointNotConfigured))
				Expect(server.ReceivedRequests()).To(BeEmpty())
			})
		})
	})

	Describe("BindRoute", func() {
		It("is never supported", func() {
			_, err := gateway.BindRoute(ctx, instance, "route.example.com")
			Expect(err).To(MatchError(domain.ErrRouteBindingNotSupported))
			Expect(server.ReceivedRequests()).To(BeEmpty())
		})

		It("fails even without a configured core", func() {
			gateway = autoscaler.NewGateway(config.EndpointConfiguration{}, platform, logger)

			_, err := gateway.BindRoute(ctx, domain.ServiceInstance{}, "")
			Expect(err).To(MatchError(domain.ErrRouteBindingNotSupported))
		})
	})
})
