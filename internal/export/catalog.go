package export

// taskCatalog is the fixed pool of candidate task names. Duplicates are
// intentional: sampling is uniform over the slice, so a name's frequency in
// the list is its weight.
var taskCatalog = []string{
	"Update project", "Configure cloud", "Develop frontend", "Analyze user", "Tune PostgreSQL",
	"Process data", "Ensure application", "Develop authentication", "Prometheus monitoring", "Analyze server",
	"Kubernetes cluster", "Develop AI", "CI/CD pipeline", "Build Telegram", "Monitor performance",
	"Develop mobile", "Configure Redis", "Develop microservice", "Integrate with", "Deploy Docker",
	"Test REST", "Implement push", "Create reporting", "Integrate with", "Write unit",
	"Migrate database", "Scrape data", "Maintain legacy", "Refactor code", "Optimize SQL",
	"Create reporting", "Refactor code", "Develop microservice", "Analyze server", "Prometheus monitoring",
	"Ensure application", "Configure cloud", "Optimize SQL", "Write unit", "Update project",
	"Develop AI", "Develop mobile", "Migrate database", "Deploy Docker", "Tune PostgreSQL",
	"Integrate with", "Build Telegram", "Kubernetes cluster", "Scrape data", "CI/CD pipeline",
	"Develop frontend", "Analyze user", "Test REST", "Implement push", "Integrate with",
	"Process data", "Monitor performance", "Configure Redis", "Maintain legacy", "Develop authentication",
	"Test REST", "Write unit", "Migrate database", "Process data", "Build Telegram",
	"Process data", "Develop microservice", "Configure Redis", "Kubernetes cluster", "Develop AI",
	"Implement push", "Integrate with", "Create reporting", "Analyze user", "Configure cloud",
	"Develop frontend", "Analyze server", "Integrate with", "Update project", "Kubernetes cluster",
	"Optimize SQL", "Deploy Docker", "Migrate database", "Develop AI", "Analyze server",
	"Develop mobile", "Ensure application", "Develop authentication", "Tune PostgreSQL", "Deploy Docker",
	"Monitor performance", "Prometheus monitoring", "Write unit", "Refactor code", "Refactor code",
	"Update project", "Monitor performance", "Develop frontend", "Create reporting", "Ensure application",
	"Prometheus monitoring", "Test REST", "Integrate with", "Optimize SQL", "Maintain legacy",
	"Develop authentication", "Implement push", "Configure Redis", "Tune PostgreSQL", "Analyze user",
	"Scrape data", "CI/CD pipeline", "Configure cloud", "CI/CD pipeline", "Maintain legacy",
	"Develop microservice", "Integrate with", "Scrape data", "Build Telegram", "Develop mobile",
	"Optimize SQL", "Develop mobile", "Integrate with", "Kubernetes cluster", "Implement push",
	"Deploy Docker", "Prometheus monitoring", "Migrate database", "Optimize SQL", "Refactor code",
	"Refactor code", "Kubernetes cluster", "Create reporting", "Process data", "Migrate database",
	"Monitor performance", "Deploy Docker", "Configure cloud", "Tune PostgreSQL", "Analyze user",
	"Integrate with", "CI/CD pipeline", "Maintain legacy", "Analyze server", "Analyze user",
	"Maintain legacy", "Integrate with", "Prometheus monitoring", "Develop frontend", "Configure Redis",
	"Maintain legacy", "Create reporting", "Implement push", "Update project", "Configure Redis",
	"Develop authentication", "Monitor performance", "Ensure application", "Kubernetes cluster", "Configure cloud",
	"Create reporting", "Scrape data", "Deploy Docker", "Migrate database", "Develop microservice",
	"Process data", "Test REST", "Tune PostgreSQL", "Analyze server", "Integrate with",
	"Build Telegram", "Develop mobile", "Build Telegram", "Develop AI", "Test REST",
	"Scrape data", "Optimize SQL", "Maintain legacy", "Build Telegram", "Kubernetes cluster",
	"Create reporting", "Update project", "Develop frontend", "Write unit", "Configure Redis",
	"Ensure application",
}
