package notifier_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"

	"code.cloudfoundry.org/lager/v3/lagertest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"

	"github.com/modelwatch/modelwatch/models"
	"github.com/modelwatch/modelwatch/notifier"
)

var _ = Describe("WebhookEmitter", func() {
	var (
		emitter *notifier.WebhookEmitter
		logger  *lagertest.TestLogger
		alert   *models.Alert

		server     *httptest.Server
		statusCode int
		received   []byte
	)

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("emitter")
		emitter = notifier.NewWebhookEmitter(logger, &http.Client{})
		alert = &models.Alert{
			AlertId:   "alert-1",
			ModelId:   "model-fraud-v2",
			AlertType: models.AlertTypeLatencyIncrease,
			Severity:  models.SeverityCritical,
		}

		statusCode = http.StatusOK
		received = nil
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			received, _ = io.ReadAll(r.Body)
			w.WriteHeader(statusCode)
		}))
	})

	AfterEach(func() {
		server.Close()
	})

	Context("when the channel is a webhook URL", func() {
		It("posts the alert event as JSON", func() {
			Expect(emitter.Emit(server.URL, "created", alert)).To(Succeed())

			var event struct {
				Event string        `json:"event"`
				Alert *models.Alert `json:"alert"`
			}
			Expect(json.Unmarshal(received, &event)).To(Succeed())
			Expect(event.Event).To(Equal("created"))
			Expect(event.Alert.AlertId).To(Equal("alert-1"))
		})

		Context("when the webhook responds with an error status", func() {
			BeforeEach(func() {
				statusCode = http.StatusBadGateway
			})
			It("reports the failure", func() {
				err := emitter.Emit(server.URL, "created", alert)
				Expect(err).To(MatchError("webhook responded with status 502"))
			})
		})

		Context("when the webhook is unreachable", func() {
			It("reports the failure", func() {
				server.Close()
				err := emitter.Emit(server.URL, "created", alert)
				Expect(err).To(HaveOccurred())
			})
		})
	})

	Context("when the channel is not a webhook URL", func() {
		It("logs the event and reports success", func() {
			Expect(emitter.Emit("email:ml-ops@example.com", "created", alert)).To(Succeed())
			Expect(received).To(BeNil())
			Expect(logger.Buffer()).To(gbytes.Say("alert-notification"))
		})
	})
})
