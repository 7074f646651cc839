package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/estimatecheck/marketplace/internal/domain"
	catalogcase "github.com/estimatecheck/marketplace/internal/usecase/catalog"
)

// VendorsCmd browses the vendor directory.
func VendorsCmd(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vendors",
		Short: "Browse vendors",
		Long:  "List vendors by category or show one vendor with its products and reviews.",
	}

	cmd.AddCommand(vendorsListCmd(opts))
	cmd.AddCommand(vendorsShowCmd(opts))

	return cmd
}

func vendorsListCmd(opts *Options) *cobra.Command {
	var (
		category string
		pageNum  int
		admin    bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List vendors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			output, _ := cmd.Flags().GetString("output")
			return runVendorsList(cmd.Context(), cmd.OutOrStdout(), opts, category, pageNum, admin, output)
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Only vendors in this category")
	cmd.Flags().IntVar(&pageNum, "page", 1, "Page number")
	cmd.Flags().BoolVar(&admin, "admin", false, "List as an administrator (includes blocked vendors)")
	cmd.Flags().StringP("output", "o", "text", "Output format (text or json)")

	return cmd
}

func vendorsShowCmd(opts *Options) *cobra.Command {
	var admin bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a vendor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")
			return runVendorsShow(cmd.Context(), cmd.OutOrStdout(), opts, args[0], admin, output)
		},
	}

	cmd.Flags().BoolVar(&admin, "admin", false, "Show as an administrator")
	cmd.Flags().StringP("output", "o", "text", "Output format (text or json)")

	return cmd
}

func actorFor(admin bool) domain.Actor {
	if admin {
		return cliAdmin
	}
	return domain.Actor{}
}

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func runVendorsList(ctx context.Context, w io.Writer, opts *Options, category string, pageNum int, admin bool, output string) error {
	a, err := newApp(ctx, opts)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx = domain.ContextWithActor(ctx, actorFor(admin))
	res, err := a.catalog.ListVendors(ctx, category, pageNum)
	if err != nil {
		return fmt.Errorf("list vendors: %w", err)
	}

	if output == "json" {
		return printJSON(w, res)
	}
	if len(res.Vendors) == 0 {
		fmt.Fprintln(w, "No vendors found.")
		return nil
	}

	fmt.Fprintf(w, "%d vendors (page %d/%d)\n\n", res.Page.Total, res.Page.Current, res.Page.Count)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCOMPANY\tCATEGORIES\tRATING\tSTATUS")
	for _, v := range res.Vendors {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.1f (%d)\t%s\n", v.ID, v.CompanyName,
			strings.Join(v.Categories, ", "), v.AvgRating, v.ReviewCount, v.Status)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write vendors: %w", err)
	}
	return nil
}

func runVendorsShow(ctx context.Context, w io.Writer, opts *Options, id string, admin bool, output string) error {
	a, err := newApp(ctx, opts)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx = domain.ContextWithActor(ctx, actorFor(admin))
	d, err := a.catalog.Vendor(ctx, id)
	if err != nil {
		return fmt.Errorf("show vendor: %w", err)
	}

	if output == "json" {
		return printJSON(w, d)
	}
	printVendor(w, &d)
	return nil
}

func printVendor(w io.Writer, d *catalogcase.VendorDetail) {
	v := &d.Vendor
	fmt.Fprintf(w, "%s (%s)\n", v.CompanyName, v.ID)
	fmt.Fprintf(w, "Categories: %s\n", strings.Join(v.Categories, ", "))
	fmt.Fprintf(w, "Rating:     %.1f from %d reviews\n", v.AvgRating, v.ReviewCount)
	fmt.Fprintf(w, "Contact:    phone %s, email %s, kakao %s\n", v.Contact.Phone, v.Contact.Email, v.Contact.Kakao)

	if len(d.Products) > 0 {
		fmt.Fprintln(w, "\nProducts:")
		for _, p := range d.Products {
			fmt.Fprintf(w, "  %s  %s [%s]\n", p.ID, p.Name, p.Category)
		}
	}
	if len(d.Reviews) > 0 {
		fmt.Fprintln(w, "\nReviews:")
		for _, r := range d.Reviews {
			fmt.Fprintf(w, "  %d/5  %s  %s\n", r.Rating, r.CreatedAt.Format("2006-01-02"), r.Text)
		}
	}
}
