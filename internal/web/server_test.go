package web

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/smtp"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/lakhansingh/portfolio/internal/chatbot"
	"github.com/lakhansingh/portfolio/internal/config"
	"github.com/lakhansingh/portfolio/internal/contact"
	"github.com/lakhansingh/portfolio/internal/metrics"
	"github.com/lakhansingh/portfolio/internal/storage"
	"github.com/lakhansingh/portfolio/pkg/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
	if err := logger.InitWriter(io.Discard); err != nil {
		panic(err)
	}
}

type fixture struct {
	srv   *Server
	store *storage.Store
	sent  *int
}

func newFixture(t *testing.T, smtpCfg contact.SMTPConfig, sendErr error) *fixture {
	t.Helper()
	store, err := storage.Open(":memory:")
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	sent := 0
	send := func(string, smtp.Auth, string, []string, []byte) error {
		sent++
		return sendErr
	}

	cfg := config.New()
	cfg.DataDir = ":memory:"
	cfg.AdminUsername = "owner"
	cfg.AdminPassword = "s3cret"

	srv, err := New(Dependencies{
		Config:    cfg,
		Store:     store,
		Responder: chatbot.New(chatbot.WithRand(chatbot.RandFunc(func(int) int { return 0 }))),
		Mailer:    contact.NewMailer(smtpCfg, send),
		Metrics:   metrics.NewManager(),
		Logger:    logger.Get(),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return &fixture{srv: srv, store: store, sent: &sent}
}

var configuredSMTP = contact.SMTPConfig{
	Host:     "smtp.example.com",
	Port:     "587",
	Username: "bot@example.com",
	Password: "pw",
	To:       "owner@example.com",
}

func (f *fixture) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	f.srv.Handler().ServeHTTP(w, req)
	return w
}

func formRequest(path string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func (f *fixture) login(t *testing.T) *http.Cookie {
	t.Helper()
	w := f.do(formRequest("/admin/login", url.Values{"username": {"owner"}, "password": {"s3cret"}}))
	for _, c := range w.Result().Cookies() {
		if c.Name == adminCookie {
			return c
		}
	}
	t.Fatalf("login did not set %s cookie (status %d)", adminCookie, w.Code)
	return nil
}

func TestNewRequiresDependencies(t *testing.T) {
	Convey("Given missing dependencies", t, func() {
		_, err := New(Dependencies{})

		Convey("Then New fails with ErrMissingDependency", func() {
			So(errors.Is(err, ErrMissingDependency), ShouldBeTrue)
		})
	})
}

func TestPages(t *testing.T) {
	Convey("Given a server", t, func() {
		f := newFixture(t, configuredSMTP, nil)

		Convey("When the home page is requested", func() {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("User-Agent", "test-agent")
			w := f.do(req)

			Convey("Then it renders the portfolio with the chat widget", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				body := w.Body.String()
				So(body, ShouldContainSubstring, "Lakhan Singh")
				So(body, ShouldContainSubstring, `hx-post="/chat"`)
				So(body, ShouldContainSubstring, "--typing-delay: 800ms")
			})

			Convey("Then the view is recorded with a hashed ip", func() {
				visitors, err := f.store.RecentVisitors(context.Background(), 10)
				So(err, ShouldBeNil)
				So(len(visitors), ShouldEqual, 1)
				So(visitors[0].Path, ShouldEqual, "/")
				So(visitors[0].UserAgent, ShouldEqual, "test-agent")
				So(len(visitors[0].HashedIP), ShouldEqual, 16)
				So(visitors[0].HashedIP, ShouldNotContainSubstring, "192.0.2.1")
			})
		})

		Convey("When Do Not Track is set", func() {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("DNT", "1")
			So(f.do(req).Code, ShouldEqual, http.StatusOK)

			Convey("Then nothing is recorded", func() {
				visitors, err := f.store.RecentVisitors(context.Background(), 10)
				So(err, ShouldBeNil)
				So(len(visitors), ShouldEqual, 0)
			})
		})

		Convey("When the fragments are requested", func() {
			work := f.do(httptest.NewRequest(http.MethodGet, "/work-content", nil))
			edu := f.do(httptest.NewRequest(http.MethodGet, "/education-content", nil))
			form := f.do(httptest.NewRequest(http.MethodGet, "/contact-form", nil))

			Convey("Then each renders its content", func() {
				So(work.Code, ShouldEqual, http.StatusOK)
				So(work.Body.String(), ShouldContainSubstring, "FlyTech Solution")
				So(edu.Code, ShouldEqual, http.StatusOK)
				So(edu.Body.String(), ShouldContainSubstring, "Abdul Kalam Technical University")
				So(form.Code, ShouldEqual, http.StatusOK)
				So(form.Body.String(), ShouldContainSubstring, `name="fullName"`)
			})
		})

		Convey("When health and metrics are requested", func() {
			health := f.do(httptest.NewRequest(http.MethodGet, "/healthz", nil))
			m := f.do(httptest.NewRequest(http.MethodGet, "/metrics", nil))

			Convey("Then both respond and are not tracked", func() {
				So(health.Code, ShouldEqual, http.StatusOK)
				So(m.Code, ShouldEqual, http.StatusOK)
				So(m.Body.String(), ShouldContainSubstring, "portfolio_http_requests_total")
				visitors, err := f.store.RecentVisitors(context.Background(), 10)
				So(err, ShouldBeNil)
				So(len(visitors), ShouldEqual, 0)
			})
		})
	})
}

func TestChatFragment(t *testing.T) {
	Convey("Given a server", t, func() {
		f := newFixture(t, configuredSMTP, nil)
		session := uuid.NewString()

		Convey("When a greeting is posted from the chat form", func() {
			w := f.do(formRequest("/chat", url.Values{"message": {"  Hello <there>  "}, "session_id": {session}}))

			Convey("Then a user bubble and a bot bubble are returned", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				body := w.Body.String()
				So(body, ShouldContainSubstring, "user-message")
				So(body, ShouldContainSubstring, "Hello &lt;there&gt;")
				So(body, ShouldContainSubstring, `data-topic="greetings"`)
				So(body, ShouldContainSubstring, "Welcome to Lakhan Singh")
				So(body, ShouldContainSubstring, "animation-delay: 800ms")
			})

			Convey("Then the exchange is stored under the session", func() {
				msgs, err := f.store.SessionChats(context.Background(), session)
				So(err, ShouldBeNil)
				So(len(msgs), ShouldEqual, 1)
				So(msgs[0].Query, ShouldEqual, "Hello <there>")
				So(msgs[0].Topic, ShouldEqual, "greetings")
			})
		})

		Convey("When a reply contains line breaks", func() {
			w := f.do(formRequest("/chat", url.Values{"message": {"projects"}, "session_id": {session}}))

			Convey("Then they are rendered as <br>", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Body.String(), ShouldContainSubstring, "<br><br>1. Hospital-Focused HRMS Platform")
			})
		})

		Convey("When a very long message is posted", func() {
			long := strings.Repeat("list his skills ", 200)
			w := f.do(formRequest("/chat", url.Values{"message": {long}, "session_id": {session}}))

			Convey("Then it is answered and only the stored copy is shortened", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Body.String(), ShouldContainSubstring, `data-topic="skills"`)
				msgs, err := f.store.SessionChats(context.Background(), session)
				So(err, ShouldBeNil)
				So(len(msgs), ShouldEqual, 1)
				So(len(msgs[0].Query), ShouldEqual, maxStoredQueryRunes)
				So(strings.HasPrefix(strings.TrimSpace(long), msgs[0].Query), ShouldBeTrue)
			})
		})

		Convey("When the message is blank", func() {
			w := f.do(formRequest("/chat", url.Values{"message": {"   "}}))

			Convey("Then nothing is returned or stored", func() {
				So(w.Code, ShouldEqual, http.StatusNoContent)
				msgs, err := f.store.RecentChats(context.Background(), 10)
				So(err, ShouldBeNil)
				So(len(msgs), ShouldEqual, 0)
			})
		})
	})
}

func TestChatJSON(t *testing.T) {
	Convey("Given a server", t, func() {
		f := newFixture(t, configuredSMTP, nil)

		post := func(body string) *httptest.ResponseRecorder {
			req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			return f.do(req)
		}

		Convey("When a question arrives without a session", func() {
			w := post(`{"message":"Hi"}`)
			var resp chatResponse
			So(json.Unmarshal(w.Body.Bytes(), &resp), ShouldBeNil)

			Convey("Then a session is issued with the topic and reply", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				_, err := uuid.Parse(resp.SessionID)
				So(err, ShouldBeNil)
				So(resp.Topic, ShouldEqual, chatbot.TopicGreetings)
				So(resp.Response, ShouldNotBeEmpty)
			})
		})

		Convey("When a known session is sent", func() {
			session := uuid.NewString()
			w := post(`{"message":"x","session_id":"` + session + `"}`)
			var resp chatResponse
			So(json.Unmarshal(w.Body.Bytes(), &resp), ShouldBeNil)

			Convey("Then it is kept and short input gets the clarify prompt", func() {
				So(resp.SessionID, ShouldEqual, session)
				So(resp.Topic, ShouldEqual, chatbot.TopicClarify)
				So(resp.Response, ShouldEqual, chatbot.ClarifyPrompt)
			})
		})

		Convey("When the message is longer than the stored transcript allows", func() {
			body, err := json.Marshal(chatRequest{Message: strings.Repeat("list his skills ", 200)})
			So(err, ShouldBeNil)
			w := post(string(body))
			var resp chatResponse
			So(json.Unmarshal(w.Body.Bytes(), &resp), ShouldBeNil)

			Convey("Then it is still answered", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(resp.Topic, ShouldEqual, chatbot.TopicSkills)
			})
		})

		Convey("When the body is not JSON", func() {
			w := post(`{"message":`)
			var resp errorResponse
			So(json.Unmarshal(w.Body.Bytes(), &resp), ShouldBeNil)

			Convey("Then a 400 with an error code is returned", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)
				So(resp.Code, ShouldEqual, codeBadRequest)
			})
		})

		Convey("When chats have been answered", func() {
			post(`{"message":"hello"}`)
			m := f.do(httptest.NewRequest(http.MethodGet, "/metrics", nil))

			Convey("Then the topic counter is exported", func() {
				So(m.Body.String(), ShouldContainSubstring, `portfolio_chat_queries_total{topic="greetings"} 1`)
			})
		})
	})
}

func TestContactSubmission(t *testing.T) {
	valid := url.Values{"fullName": {"Ada"}, "email": {"ada@example.com"}, "message": {"Let's talk"}}

	Convey("Given a server with working mail", t, func() {
		f := newFixture(t, configuredSMTP, nil)

		Convey("When a valid form is posted", func() {
			w := f.do(formRequest("/contact", valid))

			Convey("Then the message is mailed and stored as delivered", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Body.String(), ShouldContainSubstring, "Thank you for your message")
				So(*f.sent, ShouldEqual, 1)
				msgs, err := f.store.RecentContacts(context.Background(), 10)
				So(err, ShouldBeNil)
				So(len(msgs), ShouldEqual, 1)
				So(msgs[0].Delivered, ShouldBeTrue)
			})
		})

		Convey("When the fields are padded with spaces", func() {
			w := f.do(formRequest("/contact", url.Values{"fullName": {"  Ada  "}, "email": {"ada@example.com"}, "message": {" Let's talk\n"}}))

			Convey("Then they are stored trimmed", func() {
				So(w.Body.String(), ShouldContainSubstring, "Thank you for your message")
				msgs, err := f.store.RecentContacts(context.Background(), 10)
				So(err, ShouldBeNil)
				So(len(msgs), ShouldEqual, 1)
				So(msgs[0].Name, ShouldEqual, "Ada")
				So(msgs[0].Message, ShouldEqual, "Let's talk")
			})
		})

		rejected := []struct {
			name string
			form url.Values
		}{
			{"incomplete", url.Values{"fullName": {"Ada"}}},
			{"only whitespace", url.Values{"fullName": {"   "}, "email": {"ada@example.com"}, "message": {"Let's talk"}}},
			{"a malformed email", url.Values{"fullName": {"Ada"}, "email": {"not-an-address"}, "message": {"Let's talk"}}},
			{"an oversize message", url.Values{"fullName": {"Ada"}, "email": {"ada@example.com"}, "message": {strings.Repeat("x", 5001)}}},
			{"an oversize name", url.Values{"fullName": {strings.Repeat("é", 201)}, "email": {"ada@example.com"}, "message": {"hi"}}},
			{"a multi-line name", url.Values{"fullName": {"Ada\r\nBcc: x@example.com"}, "email": {"ada@example.com"}, "message": {"hi"}}},
		}
		for _, tc := range rejected {
			Convey("When the form has "+tc.name+" input", func() {
				w := f.do(formRequest("/contact", tc.form))

				Convey("Then the error fragment is shown and nothing is sent or stored", func() {
					So(w.Body.String(), ShouldContainSubstring, "alert-error")
					So(*f.sent, ShouldEqual, 0)
					msgs, err := f.store.RecentContacts(context.Background(), 10)
					So(err, ShouldBeNil)
					So(len(msgs), ShouldEqual, 0)
				})
			})
		}
	})

	Convey("Given a server whose mail server is down", t, func() {
		f := newFixture(t, configuredSMTP, errors.New("smtp down"))

		Convey("When a valid form is posted", func() {
			w := f.do(formRequest("/contact", valid))

			Convey("Then the visitor is thanked and the message stays undelivered", func() {
				So(w.Body.String(), ShouldContainSubstring, "Thank you for your message")
				So(*f.sent, ShouldEqual, 1)
				msgs, err := f.store.RecentContacts(context.Background(), 10)
				So(err, ShouldBeNil)
				So(len(msgs), ShouldEqual, 1)
				So(msgs[0].Delivered, ShouldBeFalse)
			})
		})

		Convey("When the store is unavailable as well", func() {
			So(f.store.Close(), ShouldBeNil)
			w := f.do(formRequest("/contact", valid))

			Convey("Then the error fragment is shown", func() {
				So(w.Body.String(), ShouldContainSubstring, "alert-error")
				So(w.Body.String(), ShouldContainSubstring, "Please try again later")
				So(*f.sent, ShouldEqual, 1)
			})
		})
	})

	Convey("Given a server without SMTP credentials", t, func() {
		f := newFixture(t, contact.SMTPConfig{Host: "smtp.example.com", Port: "587"}, nil)
		w := f.do(formRequest("/contact", valid))

		Convey("Then the message is kept for the admin inbox", func() {
			So(w.Body.String(), ShouldContainSubstring, "Thank you for your message")
			So(*f.sent, ShouldEqual, 0)
			msgs, err := f.store.RecentContacts(context.Background(), 10)
			So(err, ShouldBeNil)
			So(len(msgs), ShouldEqual, 1)
			So(msgs[0].Delivered, ShouldBeFalse)
		})
	})
}

func TestAdmin(t *testing.T) {
	Convey("Given a server", t, func() {
		f := newFixture(t, configuredSMTP, nil)

		Convey("When the dashboard is opened without a session", func() {
			w := f.do(httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil))

			Convey("Then the visitor is sent to the login page", func() {
				So(w.Code, ShouldEqual, http.StatusFound)
				So(w.Header().Get("Location"), ShouldEqual, "/admin/login")
			})
		})

		Convey("When the wrong password is used", func() {
			w := f.do(formRequest("/admin/login", url.Values{"username": {"owner"}, "password": {"nope"}}))

			Convey("Then login is refused", func() {
				So(w.Code, ShouldEqual, http.StatusUnauthorized)
				So(w.Body.String(), ShouldContainSubstring, "Invalid credentials")
			})
		})

		Convey("When logged in", func() {
			cookie := f.login(t)
			authed := func(method, path string) *httptest.ResponseRecorder {
				req := httptest.NewRequest(method, path, nil)
				req.AddCookie(cookie)
				return f.do(req)
			}
			id, err := f.store.RecordChat(context.Background(), storage.ChatMessage{
				SessionID: "s1", Query: "hi", Topic: "greetings", Response: "Hello!",
			})
			So(err, ShouldBeNil)

			Convey("Then the dashboard and lists render", func() {
				So(authed(http.MethodGet, "/admin/dashboard").Code, ShouldEqual, http.StatusOK)
				So(authed(http.MethodGet, "/admin/visitors").Code, ShouldEqual, http.StatusOK)
				So(authed(http.MethodGet, "/admin/contacts").Code, ShouldEqual, http.StatusOK)
				chats := authed(http.MethodGet, "/admin/chats?session=s1")
				So(chats.Code, ShouldEqual, http.StatusOK)
				So(chats.Body.String(), ShouldContainSubstring, "Session s1")
			})

			Convey("Then stats are available as JSON and as a download", func() {
				w := authed(http.MethodGet, "/admin/api/stats")
				So(w.Code, ShouldEqual, http.StatusOK)
				var stats storage.Stats
				So(json.Unmarshal(w.Body.Bytes(), &stats), ShouldBeNil)
				So(stats.TotalChats, ShouldEqual, 1)

				export := authed(http.MethodGet, "/admin/export/stats")
				So(export.Header().Get("Content-Disposition"), ShouldContainSubstring, "admin-stats.json")
			})

			Convey("Then a chat message can be deleted once", func() {
				path := "/admin/chats/" + strconv.FormatInt(id, 10)
				So(authed(http.MethodDelete, path).Code, ShouldEqual, http.StatusOK)
				So(authed(http.MethodDelete, path).Code, ShouldEqual, http.StatusNotFound)
				So(authed(http.MethodDelete, "/admin/chats/abc").Code, ShouldEqual, http.StatusBadRequest)
			})

			Convey("Then privacy cleanup reports what it removed", func() {
				So(f.store.RecordVisitor(context.Background(), storage.Visitor{
					HashedIP: "old", Path: "/", Timestamp: time.Now().Add(-400 * 24 * time.Hour),
				}), ShouldBeNil)
				w := authed(http.MethodPost, "/admin/privacy/delete-visitor-data")
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Body.String(), ShouldContainSubstring, `"visitors":1`)
			})

			Convey("Then logging out clears the cookie", func() {
				w := authed(http.MethodGet, "/admin/logout")
				So(w.Code, ShouldEqual, http.StatusFound)
				So(w.Header().Get("Set-Cookie"), ShouldContainSubstring, "Max-Age=0")
			})
		})
	})
}

func TestNl2br(t *testing.T) {
	Convey("Given text with markup and line breaks", t, func() {
		out := nl2br("<b>one</b>\ntwo")

		Convey("Then markup is escaped before breaks are inserted", func() {
			So(string(out), ShouldEqual, "&lt;b&gt;one&lt;/b&gt;<br>two")
		})
	})
}
