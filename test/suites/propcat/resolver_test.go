package propcat_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/loopcontext/propcat"
	"github.com/loopcontext/propcat/test"
	mock_propcat "github.com/loopcontext/propcat/test/mock"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

type recordingObserver struct {
	mu        sync.Mutex
	loaded    []string
	failed    []string
	fallbacks []string
	missing   []string
}

func (o *recordingObserver) OnCatalogLoaded(path string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.loaded = append(o.loaded, path)
}

func (o *recordingObserver) OnCatalogLoadFailed(path string, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.failed = append(o.failed, path)
}

func (o *recordingObserver) OnLocaleFallback(requestedLocale string, resolvedLocale string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.fallbacks = append(o.fallbacks, requestedLocale+"->"+resolvedLocale)
}

func (o *recordingObserver) OnMessageMissing(locale string, key string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.missing = append(o.missing, fmt.Sprintf("%s:%s", locale, key))
}

var (
	t0        = time.Date(2026, time.January, 10, 9, 0, 0, 0, time.UTC)
	resolvers []*propcat.DefaultMessageResolver
)

func newResolver(cfg propcat.Config) *propcat.DefaultMessageResolver {
	if cfg.MessageBasename == "" {
		cfg.MessageBasename = "messages"
	}
	if cfg.MessageSuffix == "" {
		cfg.MessageSuffix = ".properties"
	}
	resolver, err := propcat.NewMessageResolver(cfg)
	Expect(err).NotTo(HaveOccurred())
	resolvers = append(resolvers, resolver)
	return resolver
}

var _ = Describe("Message Resolver", func() {
	var provider *test.MemoryProvider

	BeforeEach(func() {
		provider = test.NewMemoryProvider()
		provider.Put("messages.properties", "title=Title\nwelcome=Welcome {0}\nonly.base=Base\nblank.regional=Base value\n", t0)
		provider.Put("messages_en.properties", "welcome=Hello {0}\ncolor=colour\nblank.regional=English value\n", t0)
		provider.Put("messages_en_US.properties", "color=color\nblank.regional=\n", t0)
	})

	AfterEach(func() {
		for _, resolver := range resolvers {
			resolver.Close()
		}
		resolvers = nil
	})

	Context("lookup", func() {
		It("should return the key when no catalog has it", func() {
			resolver := newResolver(propcat.Config{Provider: provider})
			Expect(resolver.MessageLocale("does.not.exist", propcat.ParseLocale("en_US"))).To(Equal("does.not.exist"))
			Expect(resolver.Message("does.not.exist")).To(Equal("does.not.exist"))
		})

		It("should prefer the most specific catalog", func() {
			resolver := newResolver(propcat.Config{Provider: provider})
			Expect(resolver.MessageLocale("color", propcat.ParseLocale("en_US"))).To(Equal("color"))
			Expect(resolver.MessageLocale("color", propcat.ParseLocale("en_GB"))).To(Equal("colour"))
			Expect(resolver.MessageLocale("title", propcat.ParseLocale("en_US"))).To(Equal("Title"))
		})

		It("should treat an empty value as missing and continue with the parent catalog", func() {
			resolver := newResolver(propcat.Config{Provider: provider})
			Expect(resolver.MessageLocale("blank.regional", propcat.ParseLocale("en_US"))).To(Equal("English value"))
		})

		It("should use only the base catalog without a locale", func() {
			resolver := newResolver(propcat.Config{Provider: provider})
			Expect(resolver.Message("welcome", "Ana")).To(Equal("Welcome Ana"))
			Expect(resolver.Message("color")).To(Equal("color"))
		})

		It("should take the locale from the variable resolver", func() {
			resolver := newResolver(propcat.Config{
				Provider: provider,
				Resolver: propcat.MapResolver{propcat.LocaleVariable: propcat.ParseLocale("en_US")},
			})
			Expect(resolver.Message("color")).To(Equal("color"))
			Expect(resolver.MessageLocale("color", propcat.Locale{})).To(Equal("color"))
			Expect(resolver.MessageLocale("color", propcat.ParseLocale("en"))).To(Equal("colour"))
		})

		It("should ask the mocked variable resolver for the locale", func() {
			ctrl := gomock.NewController(GinkgoT())
			defer ctrl.Finish()
			variables := mock_propcat.NewMockVariableResolver(ctrl)
			variables.EXPECT().Get(propcat.LocaleVariable).Return("en", true)

			resolver := newResolver(propcat.Config{Provider: provider, Resolver: variables})
			Expect(resolver.Message("welcome", "Bo")).To(Equal("Hello Bo"))
		})

		It("should use an ambient locale string as the file suffix without rewriting it", func() {
			provider.Put("messages_zh_Hant_TW.properties", "k=hant\n", t0)
			provider.Put("messages_en-US.properties", "k=dash\n", t0)
			provider.Put("messages.properties", "k=base\n", t0)

			for ambient, want := range map[string]string{"zh_Hant_TW": "hant", "en-US": "dash", "en-us": "base"} {
				resolver := newResolver(propcat.Config{
					Provider: provider,
					Resolver: propcat.MapResolver{propcat.LocaleVariable: ambient},
				})
				Expect(resolver.Message("k")).To(Equal(want), "ambient %q", ambient)
			}
		})

		It("should probe the underscore-only catalog for an empty ambient locale", func() {
			provider.Put("messages_.properties", "title=Underscore\n", t0)
			resolver := newResolver(propcat.Config{
				Provider: provider,
				Resolver: propcat.MapResolver{propcat.LocaleVariable: ""},
			})
			Expect(resolver.Message("title")).To(Equal("Underscore"))
			Expect(resolver.Message("only.base")).To(Equal("Base"))
		})

		It("should read the locale from the context", func() {
			resolver := newResolver(propcat.Config{Provider: provider})
			ctx := propcat.WithLocale(context.Background(), propcat.ParseLocale("en-US"))
			Expect(resolver.MessageWithCtx(ctx, "color")).To(Equal("color"))
			Expect(resolver.MessageWithCtx(context.WithValue(context.Background(), "locale", "en"), "color")).To(Equal("colour"))
			Expect(resolver.MessageWithCtx(context.Background(), "color")).To(Equal("color"))
		})

		It("should expose catalogs by locale", func() {
			resolver := newResolver(propcat.Config{Provider: provider})
			catalog, ok := resolver.Catalog("en")
			Expect(ok).To(BeTrue())
			Expect(catalog.Path()).To(Equal("messages_en.properties"))
			Expect(catalog.Keys()).To(ConsistOf("welcome", "color", "blank.regional"))
			_, ok = resolver.Catalog("fr")
			Expect(ok).To(BeFalse())
		})
	})

	Context("formatting", func() {
		It("should apply message formatting only when arguments are given", func() {
			provider.Put("messages.properties", "quoted=It''s {0}\nplain=It''s plain\n", t0)
			resolver := newResolver(propcat.Config{Provider: provider})
			Expect(resolver.Message("quoted", "here")).To(Equal("It's here"))
			Expect(resolver.Message("plain")).To(Equal("It''s plain"))
		})

		It("should format numbers with the requested locale", func() {
			provider.Put("messages_de.properties", "total=Summe: {0,number}\n", t0)
			resolver := newResolver(propcat.Config{Provider: provider})
			Expect(resolver.MessageLocale("total", propcat.ParseLocale("de_DE"), 1234.5)).To(Equal("Summe: 1.234,5"))
		})

		It("should use printf verbs in string mode", func() {
			provider.Put("messages.properties", "count=%d items for %s\n", t0)
			resolver := newResolver(propcat.Config{Provider: provider, MessageFormat: propcat.FormatString})
			Expect(resolver.Message("count", 3, "Ana")).To(Equal("3 items for Ana"))
			Expect(resolver.Message("count")).To(Equal("%d items for %s"))
		})

		It("should leave unreferenced placeholders alone", func() {
			resolver := newResolver(propcat.Config{Provider: provider})
			Expect(resolver.MessageLocale("welcome", propcat.ParseLocale("fr"))).To(Equal("Welcome {0}"))
		})
	})

	Context("passthrough", func() {
		It("should not touch the provider for an empty key", func() {
			ctrl := gomock.NewController(GinkgoT())
			defer ctrl.Finish()
			resources := mock_propcat.NewMockResourceProvider(ctrl)

			resolver := newResolver(propcat.Config{Provider: resources})
			Expect(resolver.Message("")).To(Equal(""))
			Expect(resolver.MessageLocale("", propcat.ParseLocale("en"))).To(Equal(""))
			Expect(resolver.MessageWithCtx(context.Background(), "", 1)).To(Equal(""))
		})

		It("should not touch the provider without a basename", func() {
			ctrl := gomock.NewController(GinkgoT())
			defer ctrl.Finish()
			resources := mock_propcat.NewMockResourceProvider(ctrl)

			resolver, err := propcat.NewMessageResolver(propcat.Config{Provider: resources, MessageSuffix: ".properties"})
			Expect(err).NotTo(HaveOccurred())
			defer resolver.Close()
			Expect(resolver.MessageLocale("title", propcat.ParseLocale("en"), "x")).To(Equal("title"))
			_, ok := resolver.Catalog("en")
			Expect(ok).To(BeFalse())
		})
	})

	Context("reloading", func() {
		It("should keep the first version when not reloadable", func() {
			resolver := newResolver(propcat.Config{Provider: provider})
			Expect(resolver.Message("title")).To(Equal("Title"))

			provider.Put("messages.properties", "title=New Title\n", t0.Add(time.Hour))
			Expect(resolver.Message("title")).To(Equal("Title"))
			Expect(provider.Opens()).To(BeEquivalentTo(1))
		})

		It("should pick up newer files when reloadable", func() {
			resolver := newResolver(propcat.Config{Provider: provider, Reloadable: true})
			Expect(resolver.Message("title")).To(Equal("Title"))

			provider.Put("messages.properties", "title=New Title\n", t0.Add(time.Hour))
			Expect(resolver.Message("title")).To(Equal("New Title"))

			provider.Put("messages.properties", "title=Stale\n", t0)
			Expect(resolver.Message("title")).To(Equal("New Title"))
		})

		It("should keep serving a catalog whose file disappeared", func() {
			resolver := newResolver(propcat.Config{Provider: provider, Reloadable: true})
			Expect(resolver.Message("title")).To(Equal("Title"))
			provider.Remove("messages.properties")
			Expect(resolver.Message("title")).To(Equal("Title"))
		})

		It("should not cache catalogs that do not exist yet", func() {
			resolver := newResolver(propcat.Config{Provider: provider})
			Expect(resolver.MessageLocale("greeting", propcat.ParseLocale("fr"))).To(Equal("greeting"))
			provider.Put("messages_fr.properties", "greeting=Bonjour\n", t0)
			Expect(resolver.MessageLocale("greeting", propcat.ParseLocale("fr"))).To(Equal("Bonjour"))
		})

		It("should parse a catalog once under concurrent first access", func() {
			provider.SlowOpen(20 * time.Millisecond)
			resolver := newResolver(propcat.Config{Provider: provider})

			var wg sync.WaitGroup
			results := make([]string, 24)
			for i := range results {
				wg.Add(1)
				go func(i int) {
					defer GinkgoRecover()
					defer wg.Done()
					results[i] = resolver.Message("title")
				}(i)
			}
			wg.Wait()

			for _, result := range results {
				Expect(result).To(Equal("Title"))
			}
			Expect(provider.Opens()).To(BeEquivalentTo(1))
		})
	})

	Context("failures", func() {
		It("should log load failures and return the key", func() {
			ctrl := gomock.NewController(GinkgoT())
			defer ctrl.Finish()
			logger := mock_propcat.NewMockLogger(ctrl)
			logger.EXPECT().ErrorEnabled().Return(true)
			logger.EXPECT().Error(gomock.Any(), gomock.Any()).Do(func(msg string, err error) {
				var loadErr *propcat.LoadError
				Expect(errors.As(err, &loadErr)).To(BeTrue())
				Expect(loadErr.Path).To(Equal("messages.properties"))
				Expect(errors.Is(err, test.ErrOpenFailed)).To(BeTrue())
				Expect(msg).To(HavePrefix("failed to load message file messages.properties"))
			})

			provider.FailOpen("messages.properties", true)
			resolver := newResolver(propcat.Config{Provider: provider, Logger: logger})
			Expect(resolver.Message("title")).To(Equal("title"))
		})

		It("should skip logging when errors are disabled", func() {
			ctrl := gomock.NewController(GinkgoT())
			defer ctrl.Finish()
			logger := mock_propcat.NewMockLogger(ctrl)
			logger.EXPECT().ErrorEnabled().Return(false)

			provider.FailOpen("messages.properties", true)
			resolver := newResolver(propcat.Config{Provider: provider, Logger: logger})
			Expect(resolver.Message("title")).To(Equal("title"))
		})

		It("should report parser errors through the logger", func() {
			ctrl := gomock.NewController(GinkgoT())
			defer ctrl.Finish()
			parser := mock_propcat.NewMockPropertyParser(ctrl)
			parser.EXPECT().Parse(gomock.Any(), "ISO-8859-1").Return(nil, errors.New("bad escape"))
			logger := mock_propcat.NewMockLogger(ctrl)
			logger.EXPECT().ErrorEnabled().Return(true)
			logger.EXPECT().Error("failed to load message file messages.properties, cause: bad escape", gomock.Any())

			resolver := newResolver(propcat.Config{
				Provider:        provider,
				Parser:          parser,
				Logger:          logger,
				MessageEncoding: "ISO-8859-1",
			})
			Expect(resolver.Message("title")).To(Equal("title"))
		})
	})

	Context("stats and observer", func() {
		It("should count loads, fallbacks and misses", func() {
			observer := &recordingObserver{}
			resolver := newResolver(propcat.Config{Provider: provider, Observer: observer})
			resolver.MessageLocale("only.base", propcat.ParseLocale("en_US"))
			resolver.MessageLocale("nope", propcat.ParseLocale("en"))

			stats, err := propcat.SnapshotStats(resolver)
			Expect(err).NotTo(HaveOccurred())
			Expect(stats.CatalogLoads).To(HaveLen(3))
			Expect(stats.LocaleFallbacks).To(HaveKeyWithValue("en_US->", 1))
			Expect(stats.MissingMessages).To(HaveKeyWithValue("en:nope", 1))
			Expect(stats.LastLoadAt.IsZero()).To(BeFalse())

			Expect(propcat.Close(resolver)).To(Succeed())
			observer.mu.Lock()
			defer observer.mu.Unlock()
			Expect(observer.loaded).To(ConsistOf("messages_en_US.properties", "messages_en.properties", "messages.properties"))
			Expect(observer.fallbacks).To(Equal([]string{"en_US->"}))
			Expect(observer.missing).To(Equal([]string{"en:nope"}))

			Expect(propcat.ResetStats(resolver)).To(Succeed())
			stats, _ = propcat.SnapshotStats(resolver)
			Expect(stats.CatalogLoads).To(BeEmpty())
		})

		It("should notify a mocked observer of failures", func() {
			ctrl := gomock.NewController(GinkgoT())
			defer ctrl.Finish()
			observer := mock_propcat.NewMockObserver(ctrl)
			observer.EXPECT().OnCatalogLoadFailed("messages.properties", gomock.Any())
			observer.EXPECT().OnMessageMissing("", "title")

			provider.FailOpen("messages.properties", true)
			resolver := newResolver(propcat.Config{Provider: provider, Observer: observer})
			Expect(resolver.Message("title")).To(Equal("title"))
			resolver.Close()
		})
	})
})
