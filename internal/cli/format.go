package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/KodeaLabs/viventa/internal/agent"
	"github.com/KodeaLabs/viventa/internal/i18n"
	"github.com/KodeaLabs/viventa/internal/inquiry"
	"github.com/KodeaLabs/viventa/internal/project"
	"github.com/KodeaLabs/viventa/internal/property"
)

// printJSON marshals v as indented JSON and writes it to stdout.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// formatAmount renders a dollar amount with thousands separators. Cents are
// dropped; the marketplace prices in whole dollars.
func formatAmount(f float64) string {
	s := fmt.Sprintf("%d", int64(f))
	if len(s) <= 3 {
		return s
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	return strings.Join(append([]string{s}, parts...), ",")
}

func printPropertyTable(properties []property.Property) error {
	if len(properties) == 0 {
		fmt.Println("No properties found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SLUG\tTITLE\tCITY\tPRICE\tBEDS\tSTATUS")
	for _, p := range properties {
		fmt.Fprintf(w, "%s\t%s\t%s\t$%s\t%d\t%s\n",
			p.Slug, p.Title, p.City, formatAmount(p.Price), p.Bedrooms,
			p.Status.Label(i18n.English))
	}
	return w.Flush()
}

func printPropertyDetail(p *property.Property) {
	fmt.Printf("%s\n", p.Title)
	fmt.Printf("  Slug:      %s\n", p.Slug)
	fmt.Printf("  Price:     $%s\n", formatAmount(p.Price))
	fmt.Printf("  Type:      %s (%s)\n", p.PropertyType.Label(i18n.English), p.ListingType.Label(i18n.English))
	fmt.Printf("  Status:    %s\n", p.Status.Label(i18n.English))
	fmt.Printf("  Location:  %s\n", p.LocationDisplay)
	fmt.Printf("  Beds:      %d\n", p.Bedrooms)
	fmt.Printf("  Baths:     %g\n", p.Bathrooms)
	if p.AreaSqm != nil {
		fmt.Printf("  Area:      %g m2\n", *p.AreaSqm)
	}
	fmt.Printf("  Agent:     %s\n", p.Agent.FullName)
	if p.Description != "" {
		fmt.Printf("\n%s\n", p.Description)
	}
}

func printProjectTable(projects []project.Project) error {
	if len(projects) == 0 {
		fmt.Println("No projects found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SLUG\tTITLE\tCITY\tUNITS\tSTATUS")
	for _, p := range projects {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d/%d\t%s\n",
			p.Slug, p.Title, p.City, p.AvailableUnits, p.TotalUnits,
			p.Status.Label(i18n.English))
	}
	return w.Flush()
}

func printProjectDetail(p *project.Project) {
	fmt.Printf("%s\n", p.Title)
	fmt.Printf("  Slug:       %s\n", p.Slug)
	fmt.Printf("  Developer:  %s\n", p.DeveloperName)
	fmt.Printf("  Location:   %s\n", p.LocationDisplay)
	fmt.Printf("  Status:     %s\n", p.Status.Label(i18n.English))
	fmt.Printf("  Units:      %d available of %d\n", p.AvailableUnits, p.TotalUnits)
	fmt.Printf("  Progress:   %d%%\n", p.ProgressPercentage)
	if p.PriceRangeMin != nil && p.PriceRangeMax != nil {
		fmt.Printf("  Prices:     $%s to $%s\n", formatAmount(*p.PriceRangeMin), formatAmount(*p.PriceRangeMax))
	}
	if p.DeliveryDate != nil {
		fmt.Printf("  Delivery:   %s\n", *p.DeliveryDate)
	}
}

func printAssetTable(assets []project.SellableAsset) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "UNIT\tTYPE\tFLOOR\tPRICE\tSTATUS")
	for _, a := range assets {
		floor := "-"
		if a.Floor != nil {
			floor = fmt.Sprintf("%d", *a.Floor)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t$%s\t%s\n",
			a.Identifier, a.AssetType.Label(i18n.English), floor,
			formatAmount(a.PriceUSD), a.Status.Label(i18n.English))
	}
	return w.Flush()
}

func printContractTable(contracts []project.BuyerContract) error {
	if len(contracts) == 0 {
		fmt.Println("No contracts found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPROJECT\tUNIT\tPRICE\tSTATUS")
	for _, c := range contracts {
		fmt.Fprintf(w, "%s\t%s\t%s\t$%s\t%s\n",
			c.ID, c.ProjectTitle, c.Asset.Identifier,
			formatAmount(c.TotalPrice), c.Status.Label(i18n.English))
	}
	return w.Flush()
}

func printContractDetail(c *project.BuyerContract) {
	fmt.Printf("%s / %s\n", c.ProjectTitle, c.Asset.Identifier)
	fmt.Printf("  Status:     %s\n", c.Status.Label(i18n.English))
	fmt.Printf("  Price:      $%s\n", formatAmount(c.TotalPrice))
	fmt.Printf("  Initial:    $%s\n", formatAmount(c.InitialPayment))
	fmt.Printf("  Plan:       %d months\n", c.PaymentPlanMonths)
	if c.ContractDate != nil {
		fmt.Printf("  Signed:     %s\n", *c.ContractDate)
	}
}

func printPaymentTable(items []project.PaymentScheduleItem) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DUE\tCONCEPT\tAMOUNT\tSTATUS")
	for _, item := range items {
		fmt.Fprintf(w, "%s\t%s\t$%s\t%s\n",
			item.DueDate, item.Concept.Label(i18n.English),
			formatAmount(item.AmountUSD), item.Status.Label(i18n.English))
	}
	return w.Flush()
}

func printInquiryTable(inquiries []inquiry.Inquiry) error {
	if len(inquiries) == 0 {
		fmt.Println("No inquiries found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPROPERTY\tNAME\tEMAIL\tSTATUS")
	for _, inq := range inquiries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			inq.ID, inq.PropertyTitle, inq.FullName, inq.Email,
			inq.Status.Label(i18n.English))
	}
	return w.Flush()
}

func printAgentTable(agents []agent.ListItem) error {
	if len(agents) == 0 {
		fmt.Println("No agents found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SLUG\tNAME\tTYPE\tLOCATION\tACTIVE")
	for _, a := range agents {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n",
			a.Slug, a.DisplayName, a.AgentType.Label(i18n.English),
			a.LocationDisplay, a.ActiveListingsCount)
	}
	return w.Flush()
}
