package web

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/JonMunkholm/northwind/internal/core"
	"github.com/JonMunkholm/northwind/internal/model"
	"github.com/JonMunkholm/northwind/internal/store"
	"github.com/go-chi/chi/v5"
)

// maxBodySize bounds request bodies for create and update.
const maxBodySize = 1 << 20

// resource wires the five accessor operations of one entity to REST routes.
type resource[T any, K comparable] struct {
	name   string
	parse  func(string) (K, error)
	setKey func(*T, K)

	list   func(context.Context) ([]T, error)
	get    func(context.Context, K) (T, error)
	add    func(context.Context, T) (T, error)
	update func(context.Context, T) (int64, error)
	remove func(context.Context, K) (int64, error)
}

// rowsResponse reports how many rows an update or delete touched.
type rowsResponse struct {
	RowsAffected int64 `json:"rowsAffected"`
}

func (res resource[T, K]) mount(r chi.Router) {
	r.Get("/", res.handleList)
	r.Post("/", res.handleAdd)
	r.Get("/{id}", res.handleGet)
	r.Put("/{id}", res.handleUpdate)
	r.Delete("/{id}", res.handleDelete)
}

func (res resource[T, K]) handleList(w http.ResponseWriter, r *http.Request) {
	records, err := res.list(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, records)
}

func (res resource[T, K]) handleGet(w http.ResponseWriter, r *http.Request) {
	key, ok := res.key(w, r)
	if !ok {
		return
	}
	record, err := res.get(r.Context(), key)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, record)
}

func (res resource[T, K]) handleAdd(w http.ResponseWriter, r *http.Request) {
	record, ok := res.decode(w, r)
	if !ok {
		return
	}
	stored, err := res.add(r.Context(), record)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSONStatus(w, http.StatusCreated, stored)
}

// handleUpdate takes the key from the path; a key in the body is ignored.
func (res resource[T, K]) handleUpdate(w http.ResponseWriter, r *http.Request) {
	key, ok := res.key(w, r)
	if !ok {
		return
	}
	record, ok := res.decode(w, r)
	if !ok {
		return
	}
	res.setKey(&record, key)

	n, err := res.update(r.Context(), record)
	res.respondRows(w, r, key, n, err)
}

func (res resource[T, K]) handleDelete(w http.ResponseWriter, r *http.Request) {
	key, ok := res.key(w, r)
	if !ok {
		return
	}
	n, err := res.remove(r.Context(), key)
	res.respondRows(w, r, key, n, err)
}

// respondRows answers 404 when no row had the key.
func (res resource[T, K]) respondRows(w http.ResponseWriter, r *http.Request, key K, n int64, err error) {
	if err == nil && n == 0 {
		err = fmt.Errorf("%s %v: %w", res.name, key, store.ErrNotFound)
	}
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, rowsResponse{RowsAffected: n})
}

func (res resource[T, K]) key(w http.ResponseWriter, r *http.Request) (K, bool) {
	raw := chi.URLParam(r, "id")
	key, err := res.parse(raw)
	if err != nil {
		respondError(w, r, fmt.Errorf("%s %q: %w", res.name, raw, err))
		return key, false
	}
	return key, true
}

func (res resource[T, K]) decode(w http.ResponseWriter, r *http.Request) (T, bool) {
	var record T
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&record); err != nil {
		respondError(w, r, fmt.Errorf("%w: %v", core.ErrInvalidBody, err))
		return record, false
	}
	return record, true
}

func parseStringID(raw string) (string, error) {
	if raw == "" {
		return "", core.ErrInvalidID
	}
	return raw, nil
}

func parseInt32ID(raw string) (int32, error) {
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, core.ErrInvalidID
	}
	return int32(n), nil
}

func customerRoutes(svc *core.Service) resource[model.Customer, string] {
	return resource[model.Customer, string]{
		name:   "customer",
		parse:  parseStringID,
		setKey: func(c *model.Customer, id string) { c.CustomerID = id },
		list:   svc.ListCustomers,
		get:    svc.GetCustomer,
		add:    svc.AddCustomer,
		update: svc.UpdateCustomer,
		remove: svc.DeleteCustomer,
	}
}

func productRoutes(svc *core.Service) resource[model.Product, int32] {
	return resource[model.Product, int32]{
		name:   "product",
		parse:  parseInt32ID,
		setKey: func(p *model.Product, id int32) { p.ProductID = id },
		list:   svc.ListProducts,
		get:    svc.GetProduct,
		add:    svc.AddProduct,
		update: svc.UpdateProduct,
		remove: svc.DeleteProduct,
	}
}

func shipperRoutes(svc *core.Service) resource[model.Shipper, int32] {
	return resource[model.Shipper, int32]{
		name:   "shipper",
		parse:  parseInt32ID,
		setKey: func(sh *model.Shipper, id int32) { sh.ShipperID = id },
		list:   svc.ListShippers,
		get:    svc.GetShipper,
		add:    svc.AddShipper,
		update: svc.UpdateShipper,
		remove: svc.DeleteShipper,
	}
}
