package chatbot

import (
	"context"

	"nexmart-chat-backend/internal/model"
)

const maxCarouselItems = 4

const topDealsMinRating = 4.5

// ruleInput carries everything a predicate may branch on. lower is the
// trimmed, lower-cased utterance; the price limit is extracted once before
// rule evaluation.
type ruleInput struct {
	lower    string
	context  Context
	limit    int
	hasLimit bool
}

type rule struct {
	name    string
	matches func(in ruleInput) bool
	respond func(ctx context.Context, s *Service, in ruleInput) (Response, error)
}

// rules are evaluated in order and the first match wins. The order is load
// bearing: keyword sets overlap ("order" also appears in free text, "thanks,
// show me electronics" must hit the thanks rule), so rearranging entries
// changes behavior.
var rules = []rule{
	{
		name:    "greeting",
		matches: func(in ruleInput) bool { return greetingPattern.MatchString(in.lower) },
		respond: func(ctx context.Context, s *Service, in ruleInput) (Response, error) {
			return textResponse(KeyGreeting), nil
		},
	},
	{
		name:    "thanks",
		matches: func(in ruleInput) bool { return thanksPattern.MatchString(in.lower) },
		respond: func(ctx context.Context, s *Service, in ruleInput) (Response, error) {
			return textResponse(KeyThanks), nil
		},
	},
	{
		name:    "offers",
		matches: func(in ruleInput) bool { return offerPattern.MatchString(in.lower) },
		respond: func(ctx context.Context, s *Service, in ruleInput) (Response, error) {
			products, err := s.catalog.TopRated(ctx, topDealsMinRating)
			if err != nil {
				return Response{}, err
			}
			return productListResponse(KeyTopDeals, products), nil
		},
	},
	{
		name: "order-tracking",
		matches: func(in ruleInput) bool {
			return orderPattern.MatchString(in.lower) && trackingPattern.MatchString(in.lower)
		},
		respond: func(ctx context.Context, s *Service, in ruleInput) (Response, error) {
			if !in.context.IsLoggedIn {
				return Response{
					Type:       ResponseTypeHelpLinks,
					MessageKey: KeyLoginForOrders,
					Items: []HelpLink{
						{LabelKey: KeyLoginButton, Href: "/login"},
					},
				}, nil
			}

			order, found, err := s.orders.MostRecentOrder(ctx, in.context.ShopperID)
			if err != nil {
				return Response{}, err
			}
			if !found {
				return textResponse(KeyNoOrders), nil
			}

			summary := toOrderSummary(order)
			return Response{Type: ResponseTypeOrderStatus, Order: &summary}, nil
		},
	},
	{
		name:    "cart-help",
		matches: func(in ruleInput) bool { return cartPattern.MatchString(in.lower) },
		respond: func(ctx context.Context, s *Service, in ruleInput) (Response, error) {
			if in.context.CartItemsCount == 0 {
				return textResponse(KeyEmptyCart), nil
			}
			return Response{
				Type:       ResponseTypeHelpLinks,
				MessageKey: KeyCartHelp,
				Items: []HelpLink{
					{LabelKey: KeyCheckout, Href: "/checkout"},
					{LabelKey: KeyNavCart, Href: "#cart"},
				},
			}, nil
		},
	},
	{
		name:    "shipping-faq",
		matches: func(in ruleInput) bool { return shippingPattern.MatchString(in.lower) },
		respond: func(ctx context.Context, s *Service, in ruleInput) (Response, error) {
			return textResponse(KeyShippingFAQ), nil
		},
	},
	{
		name:    "returns-faq",
		matches: func(in ruleInput) bool { return returnsPattern.MatchString(in.lower) },
		respond: func(ctx context.Context, s *Service, in ruleInput) (Response, error) {
			return textResponse(KeyReturnsFAQ), nil
		},
	},
	{
		name:    "payment-faq",
		matches: func(in ruleInput) bool { return paymentMethodPattern.MatchString(in.lower) },
		respond: func(ctx context.Context, s *Service, in ruleInput) (Response, error) {
			return textResponse(KeyPaymentFAQ), nil
		},
	},
	{
		name:    "electronics",
		matches: func(in ruleInput) bool { return electronicsPattern.MatchString(in.lower) },
		respond: categoryHandler(model.CategoryElectronics, KeyElectronicsTitle),
	},
	{
		name:    "fashion",
		matches: func(in ruleInput) bool { return fashionPattern.MatchString(in.lower) },
		respond: categoryHandler(model.CategoryFashion, KeyFashionTitle),
	},
	{
		name:    "home",
		matches: func(in ruleInput) bool { return homePattern.MatchString(in.lower) },
		respond: categoryHandler(model.CategoryHome, KeyHomeTitle),
	},
	{
		name:    "gaming",
		matches: func(in ruleInput) bool { return gamingPattern.MatchString(in.lower) },
		respond: categoryHandler(model.CategoryGaming, KeyGamingTitle),
	},
	{
		name:    "price-only",
		matches: func(in ruleInput) bool { return in.hasLimit },
		respond: func(ctx context.Context, s *Service, in ruleInput) (Response, error) {
			products, err := s.catalog.List(ctx)
			if err != nil {
				return Response{}, err
			}
			products = FilterByMaxPrice(products, in.limit)
			if len(products) == 0 {
				return textResponse(KeyNoProductsInRange), nil
			}
			return productListResponse(KeyProductsUnderPrice, products), nil
		},
	},
	{
		name:    "help",
		matches: func(in ruleInput) bool { return helpPattern.MatchString(in.lower) },
		respond: func(ctx context.Context, s *Service, in ruleInput) (Response, error) {
			return Response{
				Type:       ResponseTypeHelpLinks,
				MessageKey: KeyHelpMessage,
				Items: []HelpLink{
					{LabelKey: KeyHelpCenter, Href: "/support"},
					{LabelKey: KeyNavOrders, Href: "/orders"},
					{LabelKey: KeyContactUs, Href: "/contact"},
				},
			}, nil
		},
	},
}

func categoryHandler(category, titleKey string) func(context.Context, *Service, ruleInput) (Response, error) {
	return func(ctx context.Context, s *Service, in ruleInput) (Response, error) {
		products, err := s.catalog.ListByCategory(ctx, category)
		if err != nil {
			return Response{}, err
		}
		if in.hasLimit {
			products = FilterByMaxPrice(products, in.limit)
		}
		if len(products) == 0 {
			return textResponse(KeyNoProductsInRange), nil
		}
		return productListResponse(titleKey, products), nil
	}
}

// FilterByMaxPrice keeps products priced at or below limit, preserving the
// input order.
func FilterByMaxPrice(products []model.ProductItem, limit int) []model.ProductItem {
	filtered := make([]model.ProductItem, 0, len(products))
	for _, p := range products {
		if p.Price <= float64(limit) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

func textResponse(messageKey string) Response {
	return Response{Type: ResponseTypeText, MessageKey: messageKey}
}

// productListResponse caps the carousel at four entries. An empty list is a
// valid product-list response; rules that want the no-products text check
// emptiness themselves.
func productListResponse(titleKey string, products []model.ProductItem) Response {
	if len(products) > maxCarouselItems {
		products = products[:maxCarouselItems]
	}

	summaries := make([]ProductSummary, len(products))
	for i, p := range products {
		summaries[i] = toProductSummary(p)
	}
	return Response{
		Type:     ResponseTypeProductList,
		TitleKey: titleKey,
		Products: summaries,
	}
}

func fallbackResponse() Response {
	return Response{
		Type:       ResponseTypeHelpLinks,
		MessageKey: KeyFallback,
		Items: []HelpLink{
			{LabelKey: KeyNavProducts, Href: "/products"},
			{LabelKey: KeyHelpCenter, Href: "/support"},
			{LabelKey: KeyContactUs, Href: "/contact"},
		},
	}
}
