package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/estimatecheck/marketplace/internal/domain"
	"github.com/estimatecheck/marketplace/internal/domain/search/mode"
	"github.com/estimatecheck/marketplace/internal/domain/search/nlq"
	"github.com/estimatecheck/marketplace/internal/domain/search/page"
	"github.com/estimatecheck/marketplace/internal/domain/search/request"
	"github.com/estimatecheck/marketplace/internal/domain/search/result"
	searchuc "github.com/estimatecheck/marketplace/internal/usecase/search"
)

// cliAdmin is the caller used for --admin searches.
var cliAdmin = domain.Actor{UserID: "cli", Role: domain.RoleAdmin}

type searchFlags struct {
	natural   bool
	category  string
	vendorQ   string
	vendorID  string
	minRating float64
	page      int
	view      string
	admin     bool
	output    string
}

// SearchCmd runs a search against the configured store.
func SearchCmd(opts *Options) *cobra.Command {
	var f searchFlags

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search products",
		Long: "Ranks products against the configured store. With --ai the query is read " +
			"as conversational text and the interpreter infers keywords and categories.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) > 0 {
				query = args[0]
			}
			return runSearch(cmd.Context(), cmd.OutOrStdout(), opts, query, f)
		},
	}

	cmd.Flags().BoolVar(&f.natural, "ai", false, "Interpret the query as natural language")
	cmd.Flags().StringVar(&f.category, "category", "", "Only vendors in this category")
	cmd.Flags().StringVar(&f.vendorQ, "vendor", "", "Vendor name or category term")
	cmd.Flags().StringVar(&f.vendorID, "vendor-id", "", "Only products of this vendor")
	cmd.Flags().Float64Var(&f.minRating, "min-rating", 0, "Minimum vendor average rating")
	cmd.Flags().IntVar(&f.page, "page", 1, "Page number")
	cmd.Flags().StringVar(&f.view, "view", string(mode.Products), "Result view (product or vendor)")
	cmd.Flags().BoolVar(&f.admin, "admin", false, "Search as an administrator (includes blocked vendors)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "text", "Output format (text or json)")

	return cmd
}

// searchOutput is the JSON shape of a search page.
type searchOutput struct {
	View           mode.View           `json:"view"`
	Interpretation *nlq.Interpretation `json:"interpretation,omitempty"`
	Page           page.Page           `json:"page"`
	Hits           []result.Hit        `json:"hits,omitempty"`
	Groups         []result.Group      `json:"groups,omitempty"`
	TotalHits      int                 `json:"total_hits"`
	TotalVendors   int                 `json:"total_vendors"`
}

func runSearch(ctx context.Context, w io.Writer, opts *Options, query string, f searchFlags) error {
	view := mode.View(f.view)
	if !view.IsValid() {
		return fmt.Errorf("invalid --view %q: want %s or %s", f.view, mode.Products, mode.Vendors)
	}
	if f.output != "text" && f.output != "json" {
		return fmt.Errorf("invalid --output %q: want text or json", f.output)
	}
	for _, s := range []string{query, f.vendorQ} {
		if err := request.CheckLength(s); err != nil {
			return err
		}
	}

	a, err := newApp(ctx, opts)
	if err != nil {
		return err
	}
	defer a.Close()

	actor := domain.Actor{}
	if f.admin {
		actor = cliAdmin
	}
	ctx = domain.ContextWithActor(ctx, actor)

	m := mode.Exact
	if f.natural {
		m = mode.Natural
	}
	req := request.New(query, f.vendorQ, m, f.category, f.vendorID, f.minRating)

	resp, err := a.search.Search(ctx, &req, searchuc.Options{View: view, Page: f.page})
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	maskContacts(&resp, actor)

	if f.output == "json" {
		out := searchOutput{
			View:           resp.View,
			Interpretation: resp.Interpretation,
			Page:           resp.Page,
			Hits:           resp.Hits,
			Groups:         resp.Groups,
			TotalHits:      resp.TotalHits,
			TotalVendors:   resp.TotalVendors,
		}
		return printJSON(w, out)
	}
	return printSearch(w, &resp)
}

func maskContacts(resp *searchuc.Response, actor domain.Actor) {
	for i := range resp.Hits {
		resp.Hits[i].Vendor = resp.Hits[i].Vendor.PresentedTo(actor)
	}
	for i := range resp.Groups {
		g := &resp.Groups[i]
		g.Vendor = g.Vendor.PresentedTo(actor)
		for j := range g.Items {
			g.Items[j].Vendor = g.Items[j].Vendor.PresentedTo(actor)
		}
	}
}

func printSearch(w io.Writer, resp *searchuc.Response) error {
	if in := resp.Interpretation; in != nil {
		fmt.Fprintf(w, "Interpreted: keywords=[%s] categories=[%s]\n\n",
			strings.Join(in.Keywords, " "), strings.Join(in.Categories, " "))
	}
	if resp.TotalHits == 0 {
		fmt.Fprintln(w, "No results found.")
		return nil
	}

	fmt.Fprintf(w, "Found %d products from %d vendors (page %d/%d)\n\n",
		resp.TotalHits, resp.TotalVendors, resp.Page.Current, resp.Page.Count)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	rank := resp.Page.Offset
	switch resp.View {
	case mode.Vendors:
		fmt.Fprintln(tw, "#\tVENDOR\tRATING\tBEST\tPRODUCTS")
		for _, g := range resp.Groups {
			rank++
			names := make([]string, len(g.Items))
			for i, h := range g.Items {
				names[i] = h.Product.Name
			}
			fmt.Fprintf(tw, "%d\t%s\t%.1f (%d)\t%d\t%s\n", rank, g.Vendor.CompanyName,
				g.Vendor.AvgRating, g.Vendor.ReviewCount, g.BestScore, strings.Join(names, ", "))
		}
	default:
		fmt.Fprintln(tw, "#\tPRODUCT\tCATEGORY\tVENDOR\tSCORE\tID")
		for _, h := range resp.Hits {
			rank++
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d (%d+%d)\t%s\n", rank, h.Product.Name, h.Product.Category,
				h.Vendor.CompanyName, h.Total(), h.Score.Product, h.Score.Vendor, h.Product.ID)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write results: %w", err)
	}

	if len(resp.Page.Items) > 1 {
		labels := make([]string, len(resp.Page.Items))
		for i, it := range resp.Page.Items {
			labels[i] = it.String()
		}
		fmt.Fprintf(w, "\nPages: %s\n", strings.Join(labels, " "))
	}
	return nil
}
