package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/fiken-client/internal/constants"
	"github.com/fivetwenty-io/fiken-client/pkg/fiken"
)

func TestCompaniesClient_List(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, func(writer http.ResponseWriter, request *http.Request) {
		page, err := strconv.Atoi(request.URL.Query().Get("page"))
		require.NoError(t, err)

		companies := make([]fiken.Company, 0, 20)
		for i := range 20 {
			companies = append(companies, fiken.Company{Slug: "company-" + strconv.Itoa(page*20+i)})
		}

		writer.Header().Set(constants.HeaderPage, strconv.Itoa(page))
		writer.Header().Set(constants.HeaderPageCount, "3")
		writeJSON(t, writer, http.StatusOK, companies)
	})

	iterator := NewTestClient(t, server.URL).Companies().List(context.Background(), fiken.NewQueryParams().WithPageSize(20))

	companies, err := iterator.All()
	require.NoError(t, err)
	assert.Len(t, companies, 60)
	assert.Equal(t, "company-59", companies[59].Slug)

	requests := server.Requests()
	require.Len(t, requests, 3)

	for i, request := range requests {
		assert.Equal(t, "/companies", request.Path)
		assert.Contains(t, request.Query, "page="+strconv.Itoa(i))
		assert.Contains(t, request.Query, "pageSize=20")
	}
}

func TestClient_PagesStreamsThroughTheGate(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, func(writer http.ResponseWriter, request *http.Request) {
		page, err := strconv.Atoi(request.URL.Query().Get("page"))
		require.NoError(t, err)

		writer.Header().Set(constants.HeaderPage, strconv.Itoa(page))
		writer.Header().Set(constants.HeaderPageCount, "2")
		writeJSON(t, writer, http.StatusOK, []fiken.Account{{Code: strconv.Itoa(1000 + page)}})
	})

	client := NewTestClient(t, server.URL)

	pages := fiken.StreamPages[fiken.Account](context.Background(), client.Pages(), "companies/fiken-demo/accounts", nil, nil)

	var codes []string

	for page := range pages {
		require.NoError(t, page.Err)

		for _, account := range page.Items {
			codes = append(codes, account.Code)
		}
	}

	assert.Equal(t, []string{"1000", "1001"}, codes)

	for _, request := range server.Requests() {
		assert.Equal(t, testCompany+"/accounts", request.Path)
		assert.Equal(t, "Bearer test-token", request.Header.Get("Authorization"))
	}
}

func TestContactsClient(t *testing.T) {
	t.Parallel()

	contact := fiken.Contact{ContactID: 42, Name: "Ola Nordmann", Customer: true}

	t.Run("create follows location", func(t *testing.T) {
		t.Parallel()

		server := newTestServer(t, createdAt(t, "https://api.fiken.no/api/v2"+testCompany+"/contacts/42", contact))

		created, err := NewTestClient(t, server.URL).Company("fiken-demo").Contacts().
			Create(context.Background(), &fiken.Contact{Name: "Ola Nordmann", Customer: true})
		require.NoError(t, err)
		assert.Equal(t, int64(42), created.ContactID)

		requests := server.Requests()
		require.Len(t, requests, 2)
		assert.Equal(t, http.MethodPost, requests[0].Method)
		assert.Equal(t, testCompany+"/contacts", requests[0].Path)
		assert.Equal(t, "application/json", requests[0].Header.Get("Content-Type"))

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(requests[0].Body, &body))
		assert.Equal(t, "Ola Nordmann", body["name"])

		assert.Equal(t, http.MethodGet, requests[1].Method)
		assert.Equal(t, testCompany+"/contacts/42", requests[1].Path)
	})

	t.Run("update puts then reads back", func(t *testing.T) {
		t.Parallel()

		server := newTestServer(t, func(writer http.ResponseWriter, request *http.Request) {
			if request.Method == http.MethodPut {
				writer.WriteHeader(http.StatusOK)

				return
			}

			writeJSON(t, writer, http.StatusOK, contact)
		})

		updated, err := NewTestClient(t, server.URL).Company("fiken-demo").Contacts().
			Update(context.Background(), 42, &contact)
		require.NoError(t, err)
		assert.Equal(t, "Ola Nordmann", updated.Name)

		requests := server.Requests()
		require.Len(t, requests, 2)
		assert.Equal(t, http.MethodPut, requests[0].Method)
		assert.Equal(t, testCompany+"/contacts/42", requests[0].Path)
		assert.Equal(t, http.MethodGet, requests[1].Method)
	})

	t.Run("delete", func(t *testing.T) {
		t.Parallel()

		server := newTestServer(t, func(writer http.ResponseWriter, _ *http.Request) {
			writer.WriteHeader(http.StatusNoContent)
		})

		err := NewTestClient(t, server.URL).Company("fiken-demo").Contacts().Delete(context.Background(), 42)
		require.NoError(t, err)

		requests := server.Requests()
		require.Len(t, requests, 1)
		assert.Equal(t, http.MethodDelete, requests[0].Method)
		assert.Equal(t, testCompany+"/contacts/42", requests[0].Path)
	})

	t.Run("contact persons", func(t *testing.T) {
		t.Parallel()

		server := newTestServer(t, func(writer http.ResponseWriter, _ *http.Request) {
			writeJSON(t, writer, http.StatusOK, []fiken.ContactPerson{{ContactPersonID: 1, Name: "Kari"}})
		})

		persons, err := NewTestClient(t, server.URL).Company("fiken-demo").Contacts().Persons(42).List(context.Background())
		require.NoError(t, err)
		require.Len(t, persons, 1)
		assert.Equal(t, "Kari", persons[0].Name)
		assert.Equal(t, testCompany+"/contacts/42/contactPerson", server.Requests()[0].Path)
	})
}

func TestCreateResource_Responses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		handler  http.HandlerFunc
		wantName string
		wantErr  error
	}{
		{
			name: "body without location",
			handler: func(writer http.ResponseWriter, _ *http.Request) {
				writeJSON(t, writer, http.StatusOK, fiken.Project{ProjectID: 3, Name: "Rebuild"})
			},
			wantName: "Rebuild",
		},
		{
			name: "empty body without location",
			handler: func(writer http.ResponseWriter, _ *http.Request) {
				writer.WriteHeader(http.StatusCreated)
			},
			wantErr: fiken.ErrMissingLocation,
		},
		{
			name: "location without id",
			handler: func(writer http.ResponseWriter, _ *http.Request) {
				writer.Header().Set("Location", "/companies/fiken-demo/projects/latest")
				writer.WriteHeader(http.StatusCreated)
			},
			wantErr: constants.ErrInvalidResourceID,
		},
		{
			name: "validation error",
			handler: func(writer http.ResponseWriter, _ *http.Request) {
				writeJSON(t, writer, http.StatusBadRequest, map[string]string{"message": "number is required"})
			},
			wantErr: fiken.ErrValidation,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server := newTestServer(t, testCase.handler)

			project, err := NewTestClient(t, server.URL).Company("fiken-demo").Projects().
				Create(context.Background(), &fiken.ProjectRequest{Name: "Rebuild"})

			if testCase.wantErr != nil {
				require.ErrorIs(t, err, testCase.wantErr)
				assert.Nil(t, project)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, testCase.wantName, project.Name)
			assert.Len(t, server.Requests(), 1)
		})
	}
}

func TestErrorClassification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		check   func(error) bool
		message string
	}{
		{"not found", http.StatusNotFound, fiken.IsNotFound, "Sale not found"},
		{"unauthorized", http.StatusUnauthorized, fiken.IsUnauthorized, "Invalid token"},
		{"rate limited", http.StatusTooManyRequests, fiken.IsRateLimited, "Too many requests"},
		{"server error", http.StatusBadGateway, fiken.IsServerError, "Upstream failure"},
		{"validation", http.StatusBadRequest, fiken.IsValidation, "Invalid date"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server := newTestServer(t, func(writer http.ResponseWriter, _ *http.Request) {
				writeJSON(t, writer, testCase.status, map[string]string{"message": testCase.message})
			})

			_, err := NewTestClient(t, server.URL).Company("fiken-demo").Sales().Get(context.Background(), 7)
			require.Error(t, err)
			assert.True(t, testCase.check(err))

			apiErr, ok := fiken.AsAPIError(err)
			require.True(t, ok)
			assert.Equal(t, testCase.status, apiErr.StatusCode)
			assert.Equal(t, testCase.message, apiErr.Message)
			assert.Equal(t, http.MethodGet, apiErr.Method)
		})
	}
}

func TestSalesClient(t *testing.T) {
	t.Parallel()

	sale := fiken.Sale{SaleID: 7, SaleNumber: "S-7"}

	t.Run("delete patches with description", func(t *testing.T) {
		t.Parallel()

		server := newTestServer(t, func(writer http.ResponseWriter, _ *http.Request) {
			writeJSON(t, writer, http.StatusOK, sale)
		})

		deleted, err := NewTestClient(t, server.URL).Company("fiken-demo").Sales().
			Delete(context.Background(), 7, "Registered twice")
		require.NoError(t, err)
		assert.Equal(t, int64(7), deleted.SaleID)

		requests := server.Requests()
		require.Len(t, requests, 1)
		assert.Equal(t, http.MethodPatch, requests[0].Method)
		assert.Equal(t, testCompany+"/sales/7/delete", requests[0].Path)
		assert.Equal(t, "description=Registered+twice", requests[0].Query)
	})

	t.Run("settle reads back on empty body", func(t *testing.T) {
		t.Parallel()

		server := newTestServer(t, func(writer http.ResponseWriter, request *http.Request) {
			if request.Method == http.MethodPatch {
				writer.WriteHeader(http.StatusOK)

				return
			}

			writeJSON(t, writer, http.StatusOK, sale)
		})

		settled, err := NewTestClient(t, server.URL).Company("fiken-demo").Sales().
			Settle(context.Background(), 7, fiken.NewDate(2024, time.March, 1))
		require.NoError(t, err)
		assert.Equal(t, "S-7", settled.SaleNumber)

		requests := server.Requests()
		require.Len(t, requests, 2)
		assert.Equal(t, testCompany+"/sales/7/settled", requests[0].Path)
		assert.Equal(t, "settledDate=2024-03-01", requests[0].Query)
		assert.Equal(t, http.MethodGet, requests[1].Method)
		assert.Equal(t, testCompany+"/sales/7", requests[1].Path)
	})

	t.Run("payments", func(t *testing.T) {
		t.Parallel()

		server := newTestServer(t, func(writer http.ResponseWriter, _ *http.Request) {
			writeJSON(t, writer, http.StatusOK, []fiken.Payment{{PaymentID: 1, Amount: 12500}})
		})

		payments, err := NewTestClient(t, server.URL).Company("fiken-demo").Sales().Payments(7).List(context.Background())
		require.NoError(t, err)
		require.Len(t, payments, 1)
		assert.Equal(t, testCompany+"/sales/7/payments", server.Requests()[0].Path)
	})
}

func TestTransactionsClient_Delete(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, func(writer http.ResponseWriter, _ *http.Request) {
		writeJSON(t, writer, http.StatusOK, fiken.Transaction{TransactionID: 11, Description: "Cancelled"})
	})

	transaction, err := NewTestClient(t, server.URL).Company("fiken-demo").Transactions().
		Delete(context.Background(), 11, "")
	require.NoError(t, err)
	assert.Equal(t, "Cancelled", transaction.Description)

	requests := server.Requests()
	require.Len(t, requests, 1)
	assert.Equal(t, http.MethodPatch, requests[0].Method)
	assert.Equal(t, testCompany+"/transactions/11/delete", requests[0].Path)
	assert.Empty(t, requests[0].Query)
}

func TestInvoicesClient(t *testing.T) {
	t.Parallel()

	invoice := fiken.Invoice{InvoiceID: 99, InvoiceNumber: 10001}

	t.Run("update patches", func(t *testing.T) {
		t.Parallel()

		server := newTestServer(t, func(writer http.ResponseWriter, request *http.Request) {
			if request.Method == http.MethodPatch {
				writer.WriteHeader(http.StatusOK)

				return
			}

			writeJSON(t, writer, http.StatusOK, invoice)
		})

		sent := true

		updated, err := NewTestClient(t, server.URL).Company("fiken-demo").Invoices().
			Update(context.Background(), 99, &fiken.UpdateInvoiceRequest{SentManually: &sent})
		require.NoError(t, err)
		assert.Equal(t, int64(10001), updated.InvoiceNumber)

		requests := server.Requests()
		require.Len(t, requests, 2)
		assert.Equal(t, http.MethodPatch, requests[0].Method)
		assert.JSONEq(t, `{"sentManually":true}`, string(requests[0].Body))
	})

	t.Run("draft finalize", func(t *testing.T) {
		t.Parallel()

		server := newTestServer(t, createdAt(t, testCompany+"/invoices/99", invoice))

		created, err := NewTestClient(t, server.URL).Company("fiken-demo").Invoices().Drafts().
			Finalize(context.Background(), 5)
		require.NoError(t, err)
		assert.Equal(t, int64(99), created.InvoiceID)

		requests := server.Requests()
		require.Len(t, requests, 2)
		assert.Equal(t, http.MethodPost, requests[0].Method)
		assert.Equal(t, testCompany+"/invoices/drafts/5/createInvoice", requests[0].Path)
		assert.Empty(t, requests[0].Body)
		assert.Equal(t, testCompany+"/invoices/99", requests[1].Path)
	})

	t.Run("counter", func(t *testing.T) {
		t.Parallel()

		server := newTestServer(t, func(writer http.ResponseWriter, request *http.Request) {
			if request.Method == http.MethodPost {
				writer.WriteHeader(http.StatusCreated)

				return
			}

			writeJSON(t, writer, http.StatusOK, map[string]int64{"value": 10001})
		})

		invoices := NewTestClient(t, server.URL).Company("fiken-demo").Invoices()

		value, err := invoices.Counter(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(10001), value)

		require.NoError(t, invoices.SetCounter(context.Background(), 20000))

		requests := server.Requests()
		require.Len(t, requests, 2)
		assert.Equal(t, testCompany+"/invoices/counter", requests[1].Path)
		assert.JSONEq(t, `{"value":20000}`, string(requests[1].Body))
	})
}

func TestDraftsClient_FinalizePaths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		finalize func(fiken.CompanyClient) error
		wantPath string
	}{
		{
			name: "credit note",
			finalize: func(company fiken.CompanyClient) error {
				_, err := company.CreditNotes().Drafts().Finalize(context.Background(), 1)

				return err
			},
			wantPath: testCompany + "/creditNotes/drafts/1/createCreditNote",
		},
		{
			name: "sale",
			finalize: func(company fiken.CompanyClient) error {
				_, err := company.Sales().Drafts().Finalize(context.Background(), 2)

				return err
			},
			wantPath: testCompany + "/sales/drafts/2/createSale",
		},
		{
			name: "purchase",
			finalize: func(company fiken.CompanyClient) error {
				_, err := company.Purchases().Drafts().Finalize(context.Background(), 3)

				return err
			},
			wantPath: testCompany + "/purchases/drafts/3/createPurchase",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server := newTestServer(t, func(writer http.ResponseWriter, _ *http.Request) {
				writeJSON(t, writer, http.StatusOK, map[string]int64{"id": 1})
			})

			err := testCase.finalize(NewTestClient(t, server.URL).Company("fiken-demo"))
			require.NoError(t, err)

			requests := server.Requests()
			require.Len(t, requests, 1)
			assert.Equal(t, testCase.wantPath, requests[0].Path)
		})
	}
}

func TestAttachmentsClient_Add(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, func(writer http.ResponseWriter, request *http.Request) {
		require.NoError(t, request.ParseMultipartForm(1<<20))
		assert.Equal(t, "receipt.pdf", request.FormValue("filename"))
		assert.Equal(t, "Taxi", request.FormValue("comment"))

		file, header, err := request.FormFile("file")
		require.NoError(t, err)

		defer func() { _ = file.Close() }()

		data, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "%PDF-1.4", string(data))
		assert.Equal(t, "receipt.pdf", header.Filename)
		assert.Equal(t, "application/pdf", header.Header.Get("Content-Type"))

		writer.WriteHeader(http.StatusCreated)
	})

	file := &fiken.AttachmentFile{Filename: "receipt.pdf", ContentType: "application/pdf", Data: []byte("%PDF-1.4")}

	err := NewTestClient(t, server.URL).Company("fiken-demo").Purchases().Attachments(8).
		Add(context.Background(), file.WithField("comment", "Taxi"))
	require.NoError(t, err)
	assert.Equal(t, testCompany+"/purchases/8/attachments", server.Requests()[0].Path)
}

func TestInboxClient_Upload(t *testing.T) {
	t.Parallel()

	document := fiken.InboxDocument{DocumentID: 12, Name: "March rent", Filename: "rent.pdf"}

	server := newTestServer(t, func(writer http.ResponseWriter, request *http.Request) {
		if request.Method == http.MethodGet {
			writeJSON(t, writer, http.StatusOK, document)

			return
		}

		require.NoError(t, request.ParseMultipartForm(1<<20))
		assert.Equal(t, "March rent", request.FormValue("name"))
		assert.Equal(t, "Office", request.FormValue("description"))
		assert.Equal(t, "rent.pdf", request.FormValue("filename"))

		writer.Header().Set("Location", testCompany+"/inbox/12")
		writer.WriteHeader(http.StatusCreated)
	})

	file := &fiken.AttachmentFile{Filename: "rent.pdf", Data: []byte("%PDF-1.4")}

	uploaded, err := NewTestClient(t, server.URL).Company("fiken-demo").Inbox().
		Upload(context.Background(), file, "March rent", "Office")
	require.NoError(t, err)
	assert.Equal(t, int64(12), uploaded.DocumentID)
	assert.Nil(t, file.Fields)

	requests := server.Requests()
	require.Len(t, requests, 2)
	assert.Equal(t, testCompany+"/inbox", requests[0].Path)
	assert.Equal(t, testCompany+"/inbox/12", requests[1].Path)
}

func TestJournalEntriesClient_Create(t *testing.T) {
	t.Parallel()

	entry := fiken.JournalEntry{JournalEntryID: 3, Description: "Opening balance"}
	server := newTestServer(t, createdAt(t, testCompany+"/journalEntries/3", entry))

	created, err := NewTestClient(t, server.URL).Company("fiken-demo").JournalEntries().
		Create(context.Background(), &fiken.GeneralJournalEntryRequest{Description: "Opening balance"})
	require.NoError(t, err)
	assert.Equal(t, "Opening balance", created.Description)

	requests := server.Requests()
	require.Len(t, requests, 2)
	assert.Equal(t, testCompany+"/generalJournalEntries", requests[0].Path)
	assert.Equal(t, testCompany+"/journalEntries/3", requests[1].Path)
}

func TestBalances_DateParameter(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, func(writer http.ResponseWriter, _ *http.Request) {
		writeJSON(t, writer, http.StatusOK, fiken.AccountBalance{Code: "1920", Balance: 100})
	})

	company := NewTestClient(t, server.URL).Company("fiken-demo")
	date := fiken.NewDate(2024, time.December, 31)

	balance, err := company.AccountBalances().Get(context.Background(), "1920", date)
	require.NoError(t, err)
	assert.Equal(t, int64(100), balance.Balance)

	_, err = company.AccountBalances().Get(context.Background(), "1920", fiken.Date{})
	require.NoError(t, err)

	requests := server.Requests()
	require.Len(t, requests, 2)
	assert.Equal(t, testCompany+"/accountBalances/1920", requests[0].Path)
	assert.Equal(t, "date=2024-12-31", requests[0].Query)
	assert.Empty(t, requests[1].Query)
}

func TestGroupsClient_List(t *testing.T) {
	t.Parallel()

	t.Run("names", func(t *testing.T) {
		t.Parallel()

		server := newTestServer(t, func(writer http.ResponseWriter, _ *http.Request) {
			writeJSON(t, writer, http.StatusOK, []string{"Wholesale", "Retail"})
		})

		groups, err := NewTestClient(t, server.URL).Company("fiken-demo").Groups().List(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []fiken.Group{"Wholesale", "Retail"}, groups)
	})

	t.Run("empty body", func(t *testing.T) {
		t.Parallel()

		server := newTestServer(t, func(writer http.ResponseWriter, _ *http.Request) {
			writer.WriteHeader(http.StatusOK)
		})

		groups, err := NewTestClient(t, server.URL).Company("fiken-demo").Groups().List(context.Background())
		require.NoError(t, err)
		assert.Empty(t, groups)
		assert.NotNil(t, groups)
	})
}

func TestProductsClient_SalesReport(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, func(writer http.ResponseWriter, _ *http.Request) {
		writeJSON(t, writer, http.StatusOK, []fiken.ProductSalesReportLine{{Product: fiken.Product{Name: "Widget"}}})
	})

	lines, err := NewTestClient(t, server.URL).Company("fiken-demo").Products().
		SalesReport(context.Background(), &fiken.ProductSalesReportRequest{
			From: fiken.NewDate(2024, time.January, 1),
			To:   fiken.NewDate(2024, time.December, 31),
		})
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "Widget", lines[0].Product.Name)

	requests := server.Requests()
	require.Len(t, requests, 1)
	assert.Equal(t, http.MethodPost, requests[0].Method)
	assert.Equal(t, testCompany+"/products/salesReport", requests[0].Path)
}

func TestIDFromLocation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		location string
		want     int64
		wantErr  bool
	}{
		{"https://api.fiken.no/api/v2/companies/demo/contacts/1234", 1234, false},
		{"/companies/demo/contacts/5/", 5, false},
		{"42", 42, false},
		{"/companies/demo/contacts/", 0, true},
		{"", 0, true},
	}

	for _, testCase := range tests {
		t.Run(testCase.location, func(t *testing.T) {
			t.Parallel()

			id, err := idFromLocation(testCase.location)
			if testCase.wantErr {
				require.ErrorIs(t, err, constants.ErrInvalidResourceID)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, testCase.want, id)
		})
	}
}
