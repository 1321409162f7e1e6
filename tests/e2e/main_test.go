package e2e_test

import (
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/DIMO-Network/whatsapp-ai-bridge/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

const (
	testVerifyToken   = "e2e-verify-token"
	testWhatsAppToken = "e2e-graph-token"
	testGeminiKey     = "e2e-gemini-key"
	testPhoneNumberID = "106540352242922"
)

var (
	testServices        *TestServices
	globalTestContainer sync.Once
	srvcLock            sync.Mutex
)

type TestServices struct {
	Gemini   *mockGeminiServer
	Graph    *mockGraphServer
	refs     atomic.Int64
	Settings config.Settings
}

func GetTestServices(t *testing.T) *TestServices {
	t.Helper()
	srvcLock.Lock()
	globalTestContainer.Do(func() {
		logger := zerolog.New(os.Stdout).Level(zerolog.WarnLevel)
		zerolog.DefaultContextLogger = &logger
		settings := config.Settings{
			Port:             8080,
			MonPort:          9090,
			GeminiAPIKey:     testGeminiKey,
			WhatsAppToken:    testWhatsAppToken,
			VerifyToken:      testVerifyToken,
			PhoneNumberID:    testPhoneNumberID,
			GraphAPIVersion:  "v18.0",
			ReplyUnsupported: true,
			DedupTTL:         time.Minute,
		}

		testServices = &TestServices{
			Settings: settings,
		}
		var wg sync.WaitGroup
		waitForSetup(t, &wg, func(t *testing.T) {
			gemini := newMockGeminiServer()
			testServices.Gemini = gemini
			testServices.Settings.GeminiBaseURL = gemini.URL() + "/"
		})
		waitForSetup(t, &wg, func(t *testing.T) {
			graph := newMockGraphServer()
			testServices.Graph = graph
			testServices.Settings.GraphAPIURL = graph.URL()
		})
		wg.Wait()
		require.NoError(t, testServices.Settings.Validate())
	})
	srvcLock.Unlock()
	testServices.TeardownIfLastTest(t)
	return testServices
}

func (tc *TestServices) TeardownIfLastTest(t *testing.T) {
	tc.refs.Add(1)
	t.Cleanup(func() {
		refs := tc.refs.Add(-1)
		if refs != 0 {
			return
		}
		tc.Gemini.Close()
		tc.Graph.Close()
		// reset the onceSetup to allow the next test to run if this one is closed
		globalTestContainer = sync.Once{}
	})
}

func waitForSetup(t *testing.T, wg *sync.WaitGroup, setup func(*testing.T)) {
	wg.Add(1)
	go func() {
		defer wg.Done()
		setup(t)
	}()
}
