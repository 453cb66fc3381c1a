// Command register is the interactive point-of-sale terminal. It composes
// order drafts locally from a cached catalog snapshot and submits them to
// the back-office API, printing the server's authoritative receipt.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"dukaprint/internal/domain/entities"
	"dukaprint/internal/draft"
	"dukaprint/internal/infrastructure/backend"

	_ "github.com/joho/godotenv/autoload"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

type register struct {
	cache    *draft.Cache
	resolver *draft.Resolver
	gateway  *draft.Gateway

	draft draft.Draft

	// lastSearch keeps the most recent customer search so "customer <n>"
	// can attach by row number.
	lastSearch []entities.Customer
}

func main() {
	baseURL := getenvDefault("BACKEND_URL", "http://localhost:8080/v1")
	registerID := getenvDefault("REGISTER_ID", "REG-01")

	client, err := backend.New(baseURL, nil)
	if err != nil {
		log.Fatalf("[register][main] invalid backend url err=%v", err)
	}

	r := &register{
		cache:    draft.NewCache(client),
		resolver: draft.NewResolver(client),
		gateway:  draft.NewGateway(client, registerID),
		draft:    draft.New(),
	}

	ctx := context.Background()
	if err := r.cache.Refresh(ctx); err != nil {
		// Start anyway; the operator can retry with "refresh" once the
		// backend is reachable.
		fmt.Printf("warning: catalog refresh failed: %v\n", err)
	}

	fmt.Printf("dukaprint register %s (backend %s)\n", registerID, baseURL)
	fmt.Println(`type "help" for commands`)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}
		r.dispatch(ctx, line)
	}
}

func (r *register) dispatch(ctx context.Context, line string) {
	cmd, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch cmd {
	case "help":
		printHelp()
	case "refresh":
		if err := r.cache.Refresh(ctx); err != nil {
			fmt.Printf("refresh failed: %v\n", err)
			return
		}
		fmt.Printf("catalog loaded: %d services, %d products\n", len(r.cache.Services()), len(r.cache.Products()))
	case "services":
		r.printServices()
	case "products":
		r.printProducts()
	case "search":
		r.searchCustomers(ctx, rest)
	case "customer":
		r.attachCustomer(rest)
	case "nocustomer":
		r.draft = r.draft.WithoutCustomer()
		fmt.Println("walk-in sale")
	case "add":
		r.addItem(rest)
	case "qty":
		r.updateQuantity(rest)
	case "rm":
		r.removeItem(rest)
	case "discount":
		r.setDiscount(rest)
	case "pay":
		r.setPayment(rest)
	case "ref":
		r.draft = r.draft.WithReference(rest)
	case "notes":
		r.draft = r.draft.WithNotes(rest)
	case "show":
		r.printDraft()
	case "clear":
		r.draft = draft.New()
		fmt.Println("draft cleared")
	case "submit":
		r.submit(ctx)
	default:
		fmt.Printf("unknown command %q, try \"help\"\n", cmd)
	}
}

func printHelp() {
	fmt.Println(`commands:
  refresh              reload catalog from backend
  services             list catalog services
  products             list inventory products
  search <query>       search customers by name or phone
  customer <n>         attach customer row n from last search
  nocustomer           detach customer (walk-in)
  add s <n> [qty]      add service row n
  add p <n> [qty]      add product row n
  qty <line> <n>       change line quantity
  rm <line>            remove line
  discount <amount>    set flat discount
  pay <method> [status]  cash|mpesa|card, paid|pending|partial
  ref <code>           payment reference (e.g. M-Pesa code)
  notes <text>         order notes
  show                 print the draft
  clear                start a new draft
  submit               create the order
  quit                 exit`)
}

func (r *register) printServices() {
	services := r.cache.Services()
	if len(services) == 0 {
		fmt.Println("no services loaded, try \"refresh\"")
		return
	}
	for i, s := range services {
		fmt.Printf("%3d  %-30s %10.2f  %s\n", i+1, s.Name, s.BasePrice, s.Category)
	}
}

func (r *register) printProducts() {
	products := r.cache.Products()
	if len(products) == 0 {
		fmt.Println("no products loaded, try \"refresh\"")
		return
	}
	for i, p := range products {
		fmt.Printf("%3d  %-30s %10.2f  stock %d\n", i+1, p.Name, p.SellingPrice, p.Quantity)
	}
}

func (r *register) searchCustomers(ctx context.Context, query string) {
	results, err := r.resolver.Search(ctx, query)
	if err != nil {
		fmt.Printf("search failed: %v\n", err)
		return
	}
	r.lastSearch = results
	if len(results) == 0 {
		fmt.Println("no matches")
		return
	}
	for i, c := range results {
		fmt.Printf("%3d  %-25s %s\n", i+1, c.Name, c.Phone)
	}
}

func (r *register) attachCustomer(arg string) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(r.lastSearch) {
		fmt.Println("usage: customer <n> after a search")
		return
	}
	c := r.lastSearch[n-1]
	r.draft = r.draft.WithCustomer(c)
	fmt.Printf("customer attached: %s (%s)\n", c.Name, c.Phone)
}

func (r *register) addItem(rest string) {
	fields := strings.Fields(rest)
	if len(fields) < 2 {
		fmt.Println("usage: add s|p <n> [qty]")
		return
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil || n < 1 {
		fmt.Println("usage: add s|p <n> [qty]")
		return
	}
	qty := 1
	if len(fields) >= 3 {
		if qty, err = strconv.Atoi(fields[2]); err != nil || qty < 1 {
			fmt.Println("quantity must be a positive number")
			return
		}
	}

	switch fields[0] {
	case "s":
		services := r.cache.Services()
		if n > len(services) {
			fmt.Println("no such service row")
			return
		}
		svc := services[n-1]
		r.draft = r.draft.AddService(svc, qty)
		fmt.Printf("added %d x %s\n", qty, svc.Name)
	case "p":
		products := r.cache.Products()
		if n > len(products) {
			fmt.Println("no such product row")
			return
		}
		item := products[n-1]
		next, err := r.draft.AddProduct(item, qty)
		if err != nil {
			fmt.Printf("cannot add: %v (on hand: %d)\n", err, item.Quantity)
			return
		}
		r.draft = next
		fmt.Printf("added %d x %s\n", qty, item.Name)
	default:
		fmt.Println("usage: add s|p <n> [qty]")
	}
}

func (r *register) updateQuantity(rest string) {
	fields := strings.Fields(rest)
	if len(fields) != 2 {
		fmt.Println("usage: qty <line> <n>")
		return
	}
	line, err1 := strconv.Atoi(fields[0])
	qty, err2 := strconv.Atoi(fields[1])
	if err1 != nil || err2 != nil {
		fmt.Println("usage: qty <line> <n>")
		return
	}
	next, err := r.draft.UpdateQuantity(line-1, qty)
	if err != nil {
		fmt.Printf("cannot update: %v\n", err)
		return
	}
	r.draft = next
}

func (r *register) removeItem(rest string) {
	line, err := strconv.Atoi(rest)
	if err != nil {
		fmt.Println("usage: rm <line>")
		return
	}
	r.draft = r.draft.RemoveItem(line - 1)
}

func (r *register) setDiscount(rest string) {
	amount, err := strconv.ParseFloat(rest, 64)
	if err != nil || amount < 0 {
		fmt.Println("usage: discount <amount>")
		return
	}
	r.draft = r.draft.WithDiscount(amount)
	fmt.Printf("discount set: %.2f\n", amount)
}

func (r *register) setPayment(rest string) {
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		fmt.Println("usage: pay cash|mpesa|card [paid|pending|partial]")
		return
	}

	var method entities.PaymentMethod
	switch fields[0] {
	case "cash":
		method = entities.PaymentMethodCash
	case "mpesa":
		method = entities.PaymentMethodMpesa
	case "card":
		method = entities.PaymentMethodCard
	default:
		fmt.Println("payment method must be cash, mpesa or card")
		return
	}

	status := entities.PaymentStatusPaid
	if len(fields) >= 2 {
		switch fields[1] {
		case "paid":
			status = entities.PaymentStatusPaid
		case "pending":
			status = entities.PaymentStatusPending
		case "partial":
			status = entities.PaymentStatusPartial
		default:
			fmt.Println("payment status must be paid, pending or partial")
			return
		}
	}

	r.draft = r.draft.WithPayment(method, status)
	fmt.Printf("payment: %s / %s\n", method, status)
}

func (r *register) printDraft() {
	if r.draft.Customer != nil {
		fmt.Printf("customer: %s (%s)\n", r.draft.Customer.Name, r.draft.Customer.Phone)
	} else {
		fmt.Println("customer: walk-in")
	}
	if len(r.draft.Items) == 0 {
		fmt.Println("(no items)")
	}
	for i, l := range r.draft.Items {
		fmt.Printf("%3d  %-30s %3d x %8.2f = %10.2f\n", i+1, l.ItemName, l.Quantity, l.UnitPrice, l.TotalPrice())
	}
	fmt.Printf("subtotal: %10.2f\n", r.draft.Subtotal())
	if r.draft.Discount > 0 {
		fmt.Printf("discount: %10.2f\n", r.draft.Discount)
	}
	fmt.Printf("total:    %10.2f\n", r.draft.Total())
	fmt.Printf("payment:  %s / %s\n", r.draft.PaymentMethod, r.draft.PaymentStatus)
}

func (r *register) submit(ctx context.Context) {
	order, err := r.gateway.Submit(ctx, r.draft)
	if err != nil {
		fmt.Printf("submit failed: %v\n", err)
		return
	}
	printReceipt(order)
	r.draft = draft.New()
}

// printReceipt shows the server's figures, not the register's: the
// backend is authoritative on totals and numbering.
func printReceipt(o entities.Order) {
	fmt.Println("----------------------------------------")
	fmt.Printf("order %s\n", o.OrderNumber)
	fmt.Printf("placed %s\n", o.CreatedAt.Local().Format("2006-01-02 15:04"))
	if o.Customer != nil {
		fmt.Printf("customer: %s\n", o.Customer.Name)
	}
	for _, l := range o.Items {
		fmt.Printf("  %-28s %3d x %8.2f = %10.2f\n", l.ItemName, l.Quantity, l.UnitPrice, l.TotalPrice)
	}
	fmt.Printf("total:    %10.2f\n", o.TotalAmount)
	if o.Discount > 0 {
		fmt.Printf("discount: %10.2f\n", o.Discount)
	}
	fmt.Printf("due:      %10.2f\n", o.FinalAmount)
	fmt.Printf("payment:  %s / %s\n", o.PaymentMethod, o.PaymentStatus)
	fmt.Println("----------------------------------------")
}
