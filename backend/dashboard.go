package backend

import (
	"context"
	"net/http"

	"github.com/tidwall/gjson"

	"shopper-front/models"
)

// DashboardSummary fetches the seller's aggregate stats. The dashboard is a
// best-effort view: transport failures, auth failures, and malformed bodies
// all degrade to zero values instead of erroring the page.
func (c *Client) DashboardSummary(ctx context.Context, token string) models.DashboardSummary {
	var summary models.DashboardSummary

	resp, err := c.doJSON(ctx, http.MethodGet, "/api/dashboard/summary", token, nil)
	if err != nil {
		return summary
	}
	raw, err := readBody(resp)
	if err != nil || !gjson.ValidBytes(raw) {
		return summary
	}

	body := gjson.ParseBytes(raw)
	summary.TotalStores = int(body.Get("totalStores").Int())
	summary.TotalProducts = int(body.Get("totalProducts").Int())
	summary.TotalOrders = int(body.Get("totalOrders").Int())
	summary.TotalRevenue = body.Get("totalRevenue").Float()
	return summary
}

// DashboardBreakdown fetches the per-store rows with the same degraded
// semantics as DashboardSummary: anything unusable yields an empty slice.
func (c *Client) DashboardBreakdown(ctx context.Context, token string) []models.StoreBreakdown {
	resp, err := c.doJSON(ctx, http.MethodGet, "/api/dashboard/breakdown", token, nil)
	if err != nil {
		return nil
	}
	raw, err := readBody(resp)
	if err != nil || !gjson.ValidBytes(raw) {
		return nil
	}

	var rows []models.StoreBreakdown
	gjson.ParseBytes(raw).ForEach(func(_, row gjson.Result) bool {
		rows = append(rows, models.StoreBreakdown{
			ID:       row.Get("id").String(),
			Name:     row.Get("name").String(),
			Slug:     row.Get("slug").String(),
			Products: int(row.Get("products").Int()),
			Orders:   int(row.Get("orders").Int()),
		})
		return true
	})
	return rows
}
