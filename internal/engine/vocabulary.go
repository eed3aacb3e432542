package engine

// SkillVocabulary is the canonical skill dictionary. It doubles as the
// extraction dictionary for job descriptions and as the keyword pool for
// the exhaustive per-term provider search. Order matters: on duplicate
// lowercase forms the first occurrence supplies the canonical casing.
var SkillVocabulary = []string{
	// Programming Languages
	"python", "java", "javascript", "typescript", "c++", "c#", "php", "ruby", "go", "rust", "swift",
	"kotlin", "scala", "r", "matlab", "perl", "shell scripting", "bash", "powershell", "c",
	"objective-c", "groovy", "dart", "lua", "assembly",
	// Web Development - Frontend
	"html", "html5", "css", "css3", "react", "react.js", "angular", "angular.js", "vue", "vue.js",
	"next.js", "nuxt.js", "gatsby", "jquery", "bootstrap", "tailwind css", "sass", "less",
	"webpack", "babel", "gulp", "grunt", "ember.js", "svelte", "webassembly", "restful apis",
	"soap apis", "graphql", "ajax", "json", "xml", "jwt", "websockets", "ssr", "csr", "pwa",
	"responsive design", "cross-browser compatibility",
	// Web Development - Backend
	"node.js", "express", "express.js", "django", "flask", "spring", "spring boot", "asp.net", ".net core",
	"laravel", "ruby on rails", "phoenix", "elixir", "fastapi", "hapi", "koa", "nestJS", "strapi",
	"serverless framework", "firebase", "api development", "api design",
	// Databases & Data Storage
	"sql", "mysql", "postgresql", "postgres", "mongodb", "mongo", "redis", "oracle db", "sqlite",
	"cassandra", "dynamodb", "elasticsearch", "neo4j", "couchdb", "mariadb", "ms sql server",
	"nosql", "firebase realtimedb", "firebase firestore", "influxdb", "etcd", "data warehousing",
	"database design", "database administration", "data modeling", "query optimization", "sql alchemy",
	"hibernate", "typeorm", "prisma",
	// Cloud Platforms & Services
	"aws", "amazon web services", "azure", "microsoft azure", "gcp", "google cloud platform",
	"google cloud", "heroku", "digitalocean", "linode", "ovh", "alibaba cloud", "ibm cloud",
	"oracle cloud infrastructure", "oci", "vmware", "openshift", "lambda", "azure functions",
	"google cloud functions", "s3", "ec2", "rds", "azure blob storage", "azure virtual machines",
	"google cloud storage", "google compute engine", "cloudformation", "azure resource manager",
	"google cloud deployment manager", "cloudwatch", "azure monitor", "stackdriver",
	// DevOps & Infrastructure
	"docker", "kubernetes", "k8s", "terraform", "ansible", "jenkins", "gitlab ci", "github actions",
	"circleci", "travis ci", "chef", "puppet", "vagrant", "prometheus", "grafana", "elk stack",
	"splunk", "nagios", "zabbix", "infrastructure as code", "iac", "ci/cd", "continuous integration",
	"continuous delivery", "continuous deployment", "configuration management", "monitoring",
	"logging", "alerting", "site reliability engineering", "sre", "devops", "sysadmin",
	// Operating Systems
	"linux", "unix", "windows server", "macos", "ubuntu", "centos", "debian", "red hat", "fedora",
	"coreos", "alpine linux",
	// Data Science, Machine Learning, AI
	"machine learning", "ml", "deep learning", "dl", "data analysis", "data science", "statistics",
	"natural language processing", "nlp", "computer vision", "cv", "artificial intelligence", "ai",
	"pandas", "numpy", "scipy", "scikit-learn", "sklearn", "tensorflow", "keras", "pytorch", "torch",
	"matplotlib", "seaborn", "plotly", "jupyter notebooks", "rstudio", "tableau", "power bi",
	"apache spark", "spark", "hadoop", "kafka", "apache kafka", "airflow", "apache airflow",
	"hive", "presto", "dask", "xgboost", "lightgbm", "catboost", "shap", "nltk", "spacy", "opencv",
	"data mining", "data visualization", "big data", "etl", "feature engineering", "model deployment",
	"recommender systems", "time series analysis", "a/b testing", "reinforcement learning", "mlops",
	// Mobile Development
	"mobile development", "ios", "android development", "react native", "flutter", "xamarin",
	"cordova", "ionic", "swift", "objective-c", "kotlin", "java (android)", "swiftui",
	"jetpack compose", "kotlin multiplatform", "xcode", "android studio",
	// Software Engineering Practices & Tools
	"git", "github", "gitlab", "bitbucket", "svn", "jira", "confluence", "slack",
	"microsoft teams", "trello", "asana", "notion", "unit testing", "integration testing",
	"end-to-end testing", "test driven development", "tdd", "behavior driven development", "bdd",
	"design patterns", "software architecture", "microservices architecture", "agile", "scrum",
	"kanban", "waterfall", "lean", "six sigma", "oop", "object-oriented programming",
	"functional programming", "rest api design", "api security", "oauth", "saml", "sso",
	"software development life cycle", "sdlc", "code review", "pair programming", "version control",
	// Cybersecurity
	"cybersecurity", "information security", "network security", "application security",
	"penetration testing", "ethical hacking", "vulnerability assessment", "siem", "ids/ips",
	"firewalls", "cryptography", "iam", "identity and access management", "gdpr", "hipaa",
	"iso 27001", "soc2", "owasp", "malware analysis", "digital forensics",
	// Design & UX/UI
	"ui/ux", "ui design", "ux design", "user interface design", "user experience design",
	"figma", "adobe xd", "sketch", "invision", "zeplin", "adobe photoshop", "photoshop",
	"adobe illustrator", "illustrator", "user research", "wireframing", "prototyping",
	"usability testing", "design thinking", "interaction design", "visual design", "design systems",
	// Business & Management
	"project management", "product management", "business analysis", "stakeholder management",
	"requirements gathering", "business development", "strategy", "market research",
	"financial analysis", "risk management", "quality assurance", "qa", "erp", "sap", "salesforce",
	"microsoft dynamics", "supply chain management", "logistics",
	// Soft Skills
	"communication", "verbal communication", "written communication", "teamwork", "collaboration",
	"problem solving", "analytical skills", "critical thinking", "leadership", "team leadership",
	"time management", "adaptability", "flexibility", "creativity", "innovation",
	"attention to detail", "mentoring", "coaching", "negotiation", "conflict resolution",
	"decision making", "public speaking", "presentation skills", "customer service", "client relations",
	// General/Entry Level Terms
	"fresher", "entry level", "trainee", "intern", "junior", "Software Development", "Design", "Product",
	"Data Analysis", "DevOps", "Sysadmin",
	// Domain Specific
	"healthcare IT", "fintech", "ecommerce", "blockchain", "iot", "internet of things",
	"bioinformatics", "gis", "game development", "unreal engine", "unity",
	// Certifications
	"aws certified", "azure certified", "gcp certified", "pmp", "csm", "comptia",
	"cissp", "ccna", "cisa",
}
