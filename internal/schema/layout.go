package schema

// DefaultLayout returns the built-in layered layout of a Flutter application:
// core, data, domain and presentation below lib/, plus the top-level entry
// point files. Every call returns a fresh tree.
func DefaultLayout() *Directory {
	return Dir(
		E("lib", Dir(
			E("core", Dir(
				E("constants", Files("colors.dart", "strings.dart")),
				E("utils", Files("validators.dart", "helpers.dart")),
				E("services", Files("notification_service.dart", "local_storage_service.dart")),
				E("theme", Files("app_theme.dart")),
			)),
			E("data", Dir(
				E("models", Files("user_model.dart", "tip_model.dart")),
				E("datasources", Files("firebase_datasource.dart")),
				E("repositories", Files("user_repository_impl.dart")),
			)),
			E("domain", Dir(
				E("entities", Files("user.dart")),
				E("repositories", Files("user_repository.dart")),
				E("usecases", Files("get_user_profile.dart")),
			)),
			E("presentation", Dir(
				E("bloc", Dir(
					E("user", Files("user_bloc.dart", "user_event.dart")),
				)),
				E("pages", Dir(
					E("home", Files("home_page.dart")),
					E("welcome", Files("welcome_page.dart")),
					E("tips", Files("stress_tips_page.dart")),
					E("chatbot", Files("happy_bot_page.dart")),
					E("sos", Files("sos_page.dart")),
				)),
				E("widgets", Files("custom_button.dart", "breathing_card.dart")),
				E("routes", Files("app_routes.dart")),
			)),
		)),
		E("firebase_options.dart", EmptyFile{}),
		E("main.dart", EmptyFile{}),
	)
}
